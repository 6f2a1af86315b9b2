package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
)

const dequeueTimeout = 5 * time.Second

// TaskProcessor runs one parse task to completion
type TaskProcessor interface {
	ProcessTask(ctx context.Context, task *resume.ParseTask) error
}

type ResumeWorker struct {
	processor TaskProcessor
	queue     resume.TaskQueue
	workers   int
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewResumeWorker(processor TaskProcessor, queue resume.TaskQueue, workers int) *ResumeWorker {
	if workers < 1 {
		workers = 1
	}
	return &ResumeWorker{
		processor: processor,
		queue:     queue,
		workers:   workers,
	}
}

// WithTaskTimeout bounds how long a single task may run. Zero means no limit.
func (w *ResumeWorker) WithTaskTimeout(d time.Duration) *ResumeWorker {
	w.timeout = d
	return w
}

// Start launches the pool; workers stop when ctx is cancelled
func (w *ResumeWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d resume workers", w.workers)

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func(id int) {
			defer w.wg.Done()
			w.processTasks(ctx, id)
		}(i)
	}
}

// Wait blocks until every worker has returned
func (w *ResumeWorker) Wait() {
	w.wg.Wait()
}

func (w *ResumeWorker) processTasks(ctx context.Context, workerID int) {
	logx.Infof("Worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Worker %d stopping", workerID)
			return
		default:
		}

		data, err := w.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() == nil {
				logx.Errorf("Worker %d dequeue error: %v", workerID, err)
				sleep(ctx, time.Second)
			}
			continue
		}
		if len(data) == 0 {
			continue
		}

		w.handle(ctx, workerID, data)
	}
}

func (w *ResumeWorker) handle(ctx context.Context, workerID int, data []byte) {
	var task resume.ParseTask
	if err := json.Unmarshal(data, &task); err != nil {
		logx.Errorf("Worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
		return
	}

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	logx.Infof("Worker %d processing task: %s", workerID, task.ID)
	if err := w.processor.ProcessTask(ctx, &task); err != nil {
		logx.Errorf("Worker %d task %s failed: %v", workerID, task.ID, err)
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
