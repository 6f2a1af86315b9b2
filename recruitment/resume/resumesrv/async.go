package resumesrv

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/hirematch/internal/metrics"
	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"github.com/google/uuid"
)

// ParseResumeAsync records a pending task and queues it for the worker pool
func (s *Service) ParseResumeAsync(ctx context.Context, req resume.UploadResumeRequest) (*resume.TaskStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	task := resume.NewParseTask(kernel.NewTaskID(uuid.NewString()), req)
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, task.ID, task); err != nil {
		task.MarkFailed(string(resume.CodeQueueEnqueueFailed), err.Error())
		if saveErr := s.tasks.Save(ctx, task); saveErr != nil {
			logx.Warnf("Failed to record enqueue failure of task %s: %v", task.ID, saveErr)
		}
		s.removeFile(req.FilePath)

		return nil, resume.ErrRegistry.NewWithCause(resume.CodeQueueEnqueueFailed, err).
			WithDetail("task_id", task.ID)
	}

	logx.Infof("Task queued: TaskID=%s, User=%s, File=%s", task.ID, req.UserID, req.FileName)
	return task.ToStatusResponse(), nil
}

// taskRecordTimeout bounds the final task save, which outlives the task's own
// deadline
const taskRecordTimeout = 5 * time.Second

// ProcessTask runs a queued task once and records its outcome. The returned
// error is the parse or save failure, already recorded on the task.
func (s *Service) ProcessTask(ctx context.Context, task *resume.ParseTask) error {
	task.MarkProcessing()
	if err := s.tasks.Save(ctx, task); err != nil {
		logx.Warnf("Failed to mark task %s as processing: %v", task.ID, err)
	}

	res, err := s.UploadResume(ctx, task.Request)
	if err != nil {
		code := string(resume.CodeResumeParseFailed)
		var e *errx.Error
		if errors.As(err, &e) {
			code = string(e.Code)
		}
		task.MarkFailed(code, err.Error())
		s.metrics.ObserveTask(metrics.StatusFailure)
		logx.Errorf("Task %s failed: %v", task.ID, err)
	} else {
		task.MarkCompleted(res.ID)
		s.metrics.ObserveTask(metrics.StatusSuccess)
		logx.Infof("Task %s completed: ResumeID=%s", task.ID, res.ID)
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), taskRecordTimeout)
	defer cancel()
	if saveErr := s.tasks.Save(recordCtx, task); saveErr != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeTaskUpdateFailed, saveErr).
			WithDetail("task_id", task.ID)
	}
	return err
}

// GetTaskStatus returns a task visible to userID
func (s *Service) GetTaskStatus(ctx context.Context, userID kernel.UserID, id kernel.TaskID) (*resume.TaskStatusResponse, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, resume.ErrTaskNotFound().WithDetail("task_id", id)
	}
	return task.ToStatusResponse(), nil
}

// QueueSize reports how many tasks wait for a worker
func (s *Service) QueueSize(ctx context.Context) (int64, error) {
	n, err := s.queue.Size(ctx)
	if err != nil {
		return 0, resume.ErrRegistry.NewWithCause(resume.CodeQueueDequeueFailed, err)
	}
	return n, nil
}
