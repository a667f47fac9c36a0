// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// Job dispatches tasks for parallel processing and synchronous response
type Job struct {
	// ID names the job in logs
	ID string
	// MaxWorkers is the maximum number of workers processing a batch of tasks in parallel
	MaxWorkers int
	// MinWorkers is the minimum number of workers processing a batch of tasks in parallel
	MinWorkers int
	// Worker for processing tasks
	Worker Worker
	// FailFast controls the behavior of this Job upon errors. If set to true, it will quit
	// further processing upon the first error that occurs. For fault tolerant applications
	// use false.
	FailFast bool
}

// WorkerError wraps an underlying error struct and adds optional code
// to enrich the context of the error e.g. with the index of the failed task
type WorkerError struct {
	error
	code int
}

// NewWorkerError creates worker errors
func NewWorkerError(err error, code int) *WorkerError {
	return &WorkerError{
		err,
		code,
	}
}

// Code returns the error code
func (we WorkerError) Code() int {
	return we.code
}

// Unwrap returns the underlying error
func (we WorkerError) Unwrap() error {
	return we.error
}

// Is implements the contract for errors.Is (https://golang.org/pkg/errors/#Is)
func (we WorkerError) Is(target error) bool {
	var (
		_target WorkerError
		ok      bool
	)
	if _target, ok = target.(WorkerError); !ok {
		return false
	}
	if we.code != _target.code {
		return false
	}
	return errors.Is(we.error, _target.error)
}

// Worker declares workers functional interface
type Worker interface {
	// Work processes the task within the given context.
	Work(ctx context.Context, task interface{}) *WorkerError
}

// The WorkerFunc type is an adapter to allow the use of
// ordinary functions as Workers.
type WorkerFunc func(ctx context.Context, task interface{}) *WorkerError

// Work calls f(ctx, task).
func (f WorkerFunc) Work(ctx context.Context, task interface{}) *WorkerError {
	return f(ctx, task)
}

// allocate feeds tasks to the returned channel until they are exhausted or
// ctx is done, which is reported on the error channel
func (j *Job) allocate(ctx context.Context, tasks []interface{}) (<-chan interface{}, <-chan *WorkerError) {
	taskCh := make(chan interface{})
	errCh := make(chan *WorkerError, 1)
	go func() {
		defer close(taskCh)
		defer close(errCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				errCh <- NewWorkerError(ctx.Err(), 0)
				return
			}
		}
	}()
	return taskCh, errCh
}

// process runs the Worker on tasks from taskCh until the channel is
// closed or ctx is done. In fail fast mode it stops on the first error.
func (j *Job) process(ctx context.Context, taskCh <-chan interface{}) <-chan *WorkerError {
	errCh := make(chan *WorkerError)
	go func() {
		defer close(errCh)
		for {
			select {
			case task, ok := <-taskCh:
				if !ok {
					return
				}
				if err := j.Worker.Work(ctx, task); err != nil {
					select {
					case errCh <- err:
					case <-ctx.Done():
						return
					}
					if j.FailFast {
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return errCh
}

// Dispatch spawns a set of workers processing in parallel the supplied tasks.
// In fail fast mode the first error is returned as soon as possible and the
// remaining work is cancelled. Otherwise all tasks are processed and their
// errors are returned aggregated.
func (j *Job) Dispatch(ctx context.Context, tasks []interface{}) *WorkerError {
	if j.MaxWorkers < j.MinWorkers {
		panic(fmt.Sprintf("Job maxWorkers < minWorkers: %d < %d", j.MaxWorkers, j.MinWorkers))
	}
	workersCount := len(tasks)
	if workersCount > j.MaxWorkers {
		workersCount = j.MaxWorkers
	}
	if workersCount < j.MinWorkers {
		workersCount = j.MinWorkers
	}
	if workersCount == 0 {
		return nil
	}
	klog.V(6).Infof("%s: dispatching %d tasks to %d workers", j.ID, len(tasks), workersCount)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	taskCh, allocErrCh := j.allocate(ctx, tasks)
	errChs := []<-chan *WorkerError{allocErrCh}
	for i := 0; i < workersCount; i++ {
		errChs = append(errChs, j.process(ctx, taskCh))
	}
	return waitForPipeline(j.FailFast, cancel, errChs...)
}

// mergeErrors merges the errors from multiple channels into a single channel
func mergeErrors(channels ...<-chan *WorkerError) <-chan *WorkerError {
	var wg sync.WaitGroup
	errCh := make(chan *WorkerError, len(channels))
	output := func(ch <-chan *WorkerError) {
		for err := range ch {
			errCh <- err
		}
		wg.Done()
	}
	wg.Add(len(channels))
	for _, ch := range channels {
		go output(ch)
	}
	go func() {
		wg.Wait()
		close(errCh)
	}()
	return errCh
}

// waitForPipeline waits for results from all error channels.
// It cancels the pipeline and returns on the first error if failFast is
// true or collects errors and returns an aggregated error at the end.
func waitForPipeline(failFast bool, cancel context.CancelFunc, errChs ...<-chan *WorkerError) *WorkerError {
	var errs *multierror.Error
	for err := range mergeErrors(errChs...) {
		if err == nil {
			continue
		}
		if failFast {
			cancel()
			return err
		}
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return NewWorkerError(err, 0)
	}
	return nil
}
