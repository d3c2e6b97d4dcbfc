package batch

import (
	"fmt"
	"sync"

	"github.com/plan-systems/klog"
)

// task is one unit of work tagged with its sweep key.
type task struct {
	key Key
	run func()
}

// WorkerPool runs keyed tasks on a fixed set of goroutines. A task that
// panics is reported to onPanic under its key; the worker keeps running.
type WorkerPool struct {
	workers int
	tasks   chan task
	onPanic func(Key, error)
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex // guards tasks against close during send
	closed  bool         // protected by mu
}

// NewWorkerPool starts max(workers, 1) goroutines. onPanic may be nil.
func NewWorkerPool(workers int, onPanic func(Key, error)) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	wp := &WorkerPool{
		workers: workers,
		tasks:   make(chan task, workers),
		onPanic: onPanic,
	}
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}

	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for t := range wp.tasks {
		wp.exec(t)
	}
}

func (wp *WorkerPool) exec(t task) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrUnitPanic, r)
			klog.Errorf("batch: unit (%d, %d) recovered: %v", t.key.A, t.key.B, err)
			if wp.onPanic != nil {
				wp.onPanic(t.key, err)
			}
		}
	}()
	t.run()
}

// Submit queues run under key. It returns false once the pool is closed.
func (wp *WorkerPool) Submit(key Key, run func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}
	wp.tasks <- task{key: key, run: run}

	return true
}

// Close stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.tasks)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}
