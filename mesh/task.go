package mesh

import (
	"context"
	"fmt"
	"sync"

	"github.com/aozyumenko/go-mesh/logger"
)

// TaskFunc performs one iteration of a task loop managed by the TaskManager.
// It returns true to keep running or false to stop the goroutine.
type TaskFunc func() bool

// TaskManager manages the lifecycle of the engine's goroutines. It uses a
// context to signal cancellation and a WaitGroup to wait for termination, and
// recovers panics inside task iterations so a misbehaving handler cannot take
// the dispatcher down.
type TaskManager struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger logger.Logger

	mu    sync.Mutex
	names map[string]struct{}
}

// NewTaskManager creates a TaskManager with ctx as the parent context.
func NewTaskManager(ctx context.Context, l logger.Logger) *TaskManager {
	mgr := &TaskManager{logger: l, names: make(map[string]struct{})}
	mgr.ctx, mgr.cancel = context.WithCancel(ctx)
	return mgr
}

// Start runs taskFunc in a loop on a new goroutine until it returns false or
// the manager stops. Task names must be unique.
func (mgr *TaskManager) Start(name string, taskFunc TaskFunc) error {
	if err := mgr.claim(name); err != nil {
		return err
	}
	mgr.logger.Debug("start task", "name", name)

	mgr.wg.Add(1)
	go func() {
		defer mgr.wg.Done()
		defer mgr.release(name)
		for {
			select {
			case <-mgr.ctx.Done():
				return
			default:
				if !mgr.runWithRecover(name, taskFunc) {
					return
				}
			}
		}
	}()

	return nil
}

// StartConsumer runs taskFunc for every value received from input until the
// channel closes, taskFunc returns false or the manager stops.
func StartConsumer[T any](mgr *TaskManager, name string, input <-chan T, taskFunc func(T) bool) error {
	if err := mgr.claim(name); err != nil {
		return err
	}
	mgr.logger.Debug("start consumer task", "name", name)

	mgr.wg.Add(1)
	go func() {
		defer mgr.wg.Done()
		defer mgr.release(name)
		for {
			select {
			case <-mgr.ctx.Done():
				return
			case v, ok := <-input:
				if !ok {
					mgr.logger.Debug("input channel closed", "name", name)
					return
				}
				if !mgr.runWithRecover(name, func() bool { return taskFunc(v) }) {
					return
				}
			}
		}
	}()

	return nil
}

// Context returns the manager's context; it is done once Stop is called.
func (mgr *TaskManager) Context() context.Context { return mgr.ctx }

// Stop signals all tasks to stop.
func (mgr *TaskManager) Stop() { mgr.cancel() }

// Wait blocks until every task goroutine has terminated.
func (mgr *TaskManager) Wait() { mgr.wg.Wait() }

func (mgr *TaskManager) claim(name string) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	if _, ok := mgr.names[name]; ok {
		return fmt.Errorf("%w: %s", ErrTaskExists, name)
	}
	mgr.names[name] = struct{}{}
	return nil
}

func (mgr *TaskManager) release(name string) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	delete(mgr.names, name)
}

func (mgr *TaskManager) runWithRecover(name string, taskFunc TaskFunc) (cont bool) {
	defer func() {
		if r := recover(); r != nil {
			mgr.logger.Error("panic in task", "name", name, "panic", r)
			cont = true
		}
	}()
	return taskFunc()
}
