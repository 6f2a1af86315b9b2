package resumeinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"github.com/go-redis/redis/v8"
)

// RedisQueue implements resume.TaskQueue on a Redis list
type RedisQueue struct {
	client    *redis.Client
	queueName string
}

func NewRedisQueue(client *redis.Client, queueName string) *RedisQueue {
	return &RedisQueue{
		client:    client,
		queueName: queueName,
	}
}

var _ resume.TaskQueue = (*RedisQueue)(nil)

// Enqueue adds a task to the queue
func (q *RedisQueue) Enqueue(ctx context.Context, taskID kernel.TaskID, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for task %s: %w", taskID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue task %s: %w", taskID, err)
	}
	return nil
}

// Dequeue pops the oldest task, blocking up to timeout
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue task: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}
	return []byte(result[1]), nil
}

// Size returns the number of queued tasks
func (q *RedisQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}
