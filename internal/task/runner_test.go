package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskRunner_Defaults(t *testing.T) {
	r := NewTaskRunner(TaskRunnerConfig{WorkerCount: -3}, setupTestLogger(), nil)

	assert.Equal(t, 1, r.config.WorkerCount)
	assert.Equal(t, DefaultTaskRunnerConfig().QueueSize, r.config.QueueSize)
}

func TestTaskRunner_Submit(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewTaskRunner(TaskRunnerConfig{WorkerCount: 2, QueueSize: 4}, setupTestLogger(), reg)

	failures := make(chan error, 1)
	r.SetErrorHandler(func(_ Task, err error) { failures <- err })

	ok := newMockTask()
	boom := errors.New("boom")
	bad := &mockTask{taskType: "bad", execFn: func(context.Context) error { return boom }}

	r.Start()
	require.NoError(t, r.Submit(ok))
	require.NoError(t, r.Submit(bad))

	select {
	case err := <-failures:
		assert.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("error handler was not called")
	}
	require.Eventually(t, func() bool { return ok.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	r.Stop()

	assert.InDelta(t, 1, testutil.ToFloat64(r.executions.WithLabelValues("mock", "completed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.executions.WithLabelValues("bad", "failed")), 0)
	assert.ErrorIs(t, r.Submit(ok), ErrQueueClosed)
}

func TestTaskRunner_Schedule(t *testing.T) {
	r := NewTaskRunner(TaskRunnerConfig{WorkerCount: 1, QueueSize: 4}, setupTestLogger(), nil)
	task := newMockTask()
	disabled := &mockTask{taskType: "disabled"}

	r.Schedule(task, 10*time.Millisecond)
	r.Schedule(disabled, 0)
	require.Len(t, r.schedules, 1)

	r.Start()
	require.Eventually(t, func() bool { return task.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	r.Stop()

	assert.Zero(t, disabled.calls.Load())
}

func TestTaskRunner_StopCancelsRunningTask(t *testing.T) {
	r := NewTaskRunner(TaskRunnerConfig{WorkerCount: 1, QueueSize: 1}, setupTestLogger(), nil)
	started := make(chan struct{})
	slow := &mockTask{taskType: "slow", execFn: func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}}
	r.SetErrorHandler(func(Task, error) {})

	r.Start()
	require.NoError(t, r.Submit(slow))
	<-started

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
