package resumeinfra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"github.com/go-redis/redis/v8"
)

const DefaultTaskTTL = 24 * time.Hour

// RedisTaskStore keeps parse task state as JSON values that expire after ttl
type RedisTaskStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisTaskStore(client *redis.Client, prefix string, ttl time.Duration) *RedisTaskStore {
	if ttl <= 0 {
		ttl = DefaultTaskTTL
	}
	return &RedisTaskStore{client: client, prefix: prefix, ttl: ttl}
}

var _ resume.TaskStore = (*RedisTaskStore)(nil)

func (s *RedisTaskStore) key(id kernel.TaskID) string {
	return s.prefix + ":" + id.String()
}

func (s *RedisTaskStore) Save(ctx context.Context, task *resume.ParseTask) error {
	data, err := json.Marshal(task)
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeTaskUpdateFailed, err).
			WithDetail("task_id", task.ID)
	}

	if err := s.client.Set(ctx, s.key(task.ID), data, s.ttl).Err(); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeTaskUpdateFailed, err).
			WithDetail("task_id", task.ID)
	}
	return nil
}

func (s *RedisTaskStore) Get(ctx context.Context, id kernel.TaskID) (*resume.ParseTask, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, resume.ErrTaskNotFound().WithDetail("task_id", id)
		}
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeTaskLoadFailed, err).
			WithDetail("task_id", id)
	}

	var task resume.ParseTask
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeTaskLoadFailed, err).
			WithDetail("task_id", id)
	}
	return &task, nil
}
