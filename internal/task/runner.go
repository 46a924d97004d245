package task

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TaskRunnerConfig holds configuration for the task runner
type TaskRunnerConfig struct {
	// WorkerCount determines how many concurrent workers process tasks.
	// If zero or negative, defaults to 1.
	WorkerCount int

	// QueueSize determines the buffer size for the in-memory task queue
	QueueSize int

	// TaskTimeout bounds a single Execute call. Zero means no limit.
	TaskTimeout time.Duration
}

// DefaultTaskRunnerConfig returns a TaskRunnerConfig with reasonable defaults
func DefaultTaskRunnerConfig() TaskRunnerConfig {
	return TaskRunnerConfig{
		WorkerCount: 1,
		QueueSize:   16,
		TaskTimeout: 5 * time.Minute,
	}
}

type schedule struct {
	task     Task
	interval time.Duration
}

// TaskRunner executes tasks on a worker pool and enqueues scheduled tasks
// on their intervals.
type TaskRunner struct {
	queue      *TaskQueue
	config     TaskRunnerConfig
	logger     *slog.Logger
	schedules  []schedule
	executions *prometheus.CounterVec

	ctx     context.Context
	cancel  context.CancelFunc
	workers sync.WaitGroup
	tickers sync.WaitGroup

	errHandler func(task Task, err error)
}

// NewTaskRunner creates a TaskRunner. reg may be nil to skip metrics.
func NewTaskRunner(config TaskRunnerConfig, logger *slog.Logger, reg prometheus.Registerer) *TaskRunner {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "task_runner"))
	if config.WorkerCount <= 0 {
		logger.Warn("invalid worker count specified, using default",
			"specified_count", config.WorkerCount,
			"default_count", 1)
		config.WorkerCount = 1
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultTaskRunnerConfig().QueueSize
	}

	executions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm_mobile_api",
		Subsystem: "tasks",
		Name:      "executions_total",
		Help:      "Background task executions by type and outcome.",
	}, []string{"type", "outcome"})
	if reg != nil {
		reg.MustRegister(executions)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &TaskRunner{
		queue:      NewTaskQueue(config.QueueSize, logger),
		config:     config,
		logger:     logger,
		executions: executions,
		ctx:        ctx,
		cancel:     cancel,
		errHandler: func(task Task, err error) {
			logger.Error("task execution failed",
				"task_type", task.Type(),
				"error", err)
		},
	}
}

// SetErrorHandler allows setting a custom error handler function
func (r *TaskRunner) SetErrorHandler(handler func(task Task, err error)) {
	r.errHandler = handler
}

// Schedule registers task to be enqueued every interval once the runner
// starts. It must be called before Start.
func (r *TaskRunner) Schedule(task Task, interval time.Duration) {
	if interval <= 0 {
		r.logger.Info("task schedule disabled", "task_type", task.Type())
		return
	}
	r.schedules = append(r.schedules, schedule{task: task, interval: interval})
}

// Submit enqueues a single task for immediate processing.
func (r *TaskRunner) Submit(task Task) error {
	return r.queue.Enqueue(task)
}

// Start launches the workers and one ticker per scheduled task.
func (r *TaskRunner) Start() {
	for i := 0; i < r.config.WorkerCount; i++ {
		r.workers.Add(1)
		go r.worker(i)
	}
	for _, s := range r.schedules {
		r.tickers.Add(1)
		go r.tick(s)
	}
	r.logger.Info("task runner started",
		"worker_count", r.config.WorkerCount,
		"scheduled_tasks", len(r.schedules))
}

// Stop cancels in-flight tasks and waits for the workers to exit.
func (r *TaskRunner) Stop() {
	r.cancel()
	r.tickers.Wait()
	r.queue.Close()
	r.workers.Wait()
	r.logger.Info("task runner stopped")
}

func (r *TaskRunner) tick(s schedule) {
	defer r.tickers.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			if err := r.queue.Enqueue(s.task); err != nil {
				if errors.Is(err, ErrQueueClosed) {
					return
				}
				r.logger.Warn("skipping scheduled task",
					"task_type", s.task.Type(),
					"error", err)
			}
		}
	}
}

// worker processes tasks from the queue
func (r *TaskRunner) worker(id int) {
	defer r.workers.Done()

	r.logger.Debug("starting worker", "worker_id", id)
	for {
		select {
		case <-r.ctx.Done():
			r.logger.Debug("stopping worker", "worker_id", id)
			return
		case task, ok := <-r.queue.GetChannel():
			if !ok {
				r.logger.Debug("task channel closed, stopping worker", "worker_id", id)
				return
			}
			r.processTask(task, id)
		}
	}
}

// processTask handles execution of a single task
func (r *TaskRunner) processTask(task Task, workerID int) {
	ctx := r.ctx
	if r.config.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.TaskTimeout)
		defer cancel()
	}
	logger := r.logger.With(
		"task_type", task.Type(),
		"worker_id", workerID,
	)

	start := time.Now()
	logger.Debug("processing task")

	if err := task.Execute(ctx); err != nil {
		r.executions.WithLabelValues(task.Type(), "failed").Inc()
		r.errHandler(task, err)
		return
	}

	r.executions.WithLabelValues(task.Type(), "completed").Inc()
	logger.Debug("task completed successfully", "duration", time.Since(start))
}
