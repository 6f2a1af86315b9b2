package resumesrv

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"sync"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/fsx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
)

type fakeParser struct {
	result *resume.ParseResult
	err    error
}

func (p *fakeParser) Parse(context.Context, string, string) (*resume.ParseResult, error) {
	return p.result, p.err
}

// blockingParser waits for the task context to end
type blockingParser struct{}

func (blockingParser) Parse(ctx context.Context, _, _ string) (*resume.ParseResult, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type fakeRepo struct {
	mu      sync.Mutex
	resumes map[kernel.ResumeID]*resume.Resume
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{resumes: map[kernel.ResumeID]*resume.Resume{}}
}

func (r *fakeRepo) CreateActive(_ context.Context, res *resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, other := range r.resumes {
		if other.UserID == res.UserID {
			other.IsActive = false
		}
	}
	res.IsActive = true
	cp := *res
	r.resumes[res.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resumes[id]
	if !ok {
		return nil, resume.ErrResumeNotFound()
	}
	cp := *res
	return &cp, nil
}

func (r *fakeRepo) GetActiveByUserID(_ context.Context, userID kernel.UserID) (*resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.resumes {
		if res.UserID == userID && res.IsActive {
			cp := *res
			return &cp, nil
		}
	}
	return nil, resume.ErrNoActiveResume()
}

func (r *fakeRepo) ListByUserID(_ context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (*kernel.Paginated[resume.Resume], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []resume.Resume
	for _, res := range r.resumes {
		if res.UserID == userID {
			items = append(items, *res)
		}
	}
	return kernel.NewPaginated(items, opts, len(items)), nil
}

func (r *fakeRepo) SetActive(_ context.Context, userID kernel.UserID, id kernel.ResumeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[id]; !ok {
		return resume.ErrResumeNotFound()
	}
	for _, res := range r.resumes {
		if res.UserID == userID {
			res.IsActive = res.ID == id
		}
	}
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id kernel.ResumeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[id]; !ok {
		return resume.ErrResumeNotFound()
	}
	delete(r.resumes, id)
	return nil
}

type memFS struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemFS(paths ...string) *memFS {
	fs := &memFS{files: map[string][]byte{}}
	for _, p := range paths {
		fs.files[p] = []byte("content")
	}
	return fs
}

func (m *memFS) has(p string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[p]
	return ok
}

func (m *memFS) ReadFile(_ context.Context, p string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[p]
	if !ok {
		return nil, fsx.ErrNotExist
	}
	return data, nil
}

func (m *memFS) ReadFileStream(ctx context.Context, p string) (io.ReadCloser, error) {
	data, err := m.ReadFile(ctx, p)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memFS) WriteFile(_ context.Context, p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = data
	return nil
}

func (m *memFS) WriteFileStream(ctx context.Context, p string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return m.WriteFile(ctx, p, data)
}

func (m *memFS) DeleteFile(_ context.Context, p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[p]; !ok {
		return fsx.ErrNotExist
	}
	delete(m.files, p)
	return nil
}

func (m *memFS) Exists(_ context.Context, p string) (bool, error) {
	return m.has(p), nil
}

func (m *memFS) Join(elem ...string) string { return path.Join(elem...) }

type memTaskStore struct {
	mu    sync.Mutex
	tasks map[kernel.TaskID]resume.ParseTask
	saves int
	// honorCtx rejects calls made with a finished context, as redis does
	honorCtx bool
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: map[kernel.TaskID]resume.ParseTask{}}
}

func (s *memTaskStore) Save(ctx context.Context, t *resume.ParseTask) error {
	if s.honorCtx && ctx.Err() != nil {
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = *t
	s.saves++
	return nil
}

func (s *memTaskStore) Get(_ context.Context, id kernel.TaskID) (*resume.ParseTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, resume.ErrTaskNotFound()
	}
	return &t, nil
}

type memQueue struct {
	mu    sync.Mutex
	items [][]byte
	err   error
}

func (q *memQueue) Enqueue(_ context.Context, _ kernel.TaskID, payload any) error {
	if q.err != nil {
		return q.err
	}
	task, ok := payload.(*resume.ParseTask)
	if !ok {
		return errors.New("unexpected payload")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, []byte(task.ID))
	return nil
}

func (q *memQueue) Dequeue(context.Context, time.Duration) ([]byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, nil
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, nil
}

func (q *memQueue) Size(context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.items)), nil
}
