// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs_test

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gardener/mdscan/pkg/jobs"
	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dispatch", func() {
	var (
		failFast  bool
		processed int32
		tasks     []interface{}
		job       *jobs.Job
		err       *jobs.WorkerError
	)
	BeforeEach(func() {
		failFast = false
		processed = 0
		tasks = []interface{}{"a.md", "bad.md", "c.md", "worse.md", "e.md"}
	})
	JustBeforeEach(func() {
		job = &jobs.Job{
			ID:         "Test",
			MinWorkers: 1,
			MaxWorkers: 1,
			FailFast:   failFast,
			Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) *jobs.WorkerError {
				atomic.AddInt32(&processed, 1)
				if name := task.(string); name == "bad.md" || name == "worse.md" {
					return jobs.NewWorkerError(fmt.Errorf("processing %s failed", name), 0)
				}
				return nil
			}),
		}
		err = job.Dispatch(context.Background(), tasks)
	})
	When("fail fast is not set", func() {
		It("processes all tasks and aggregates errors", func() {
			Expect(atomic.LoadInt32(&processed)).To(Equal(int32(5)))
			Expect(err).NotTo(BeNil())
			merr, ok := err.Unwrap().(*multierror.Error)
			Expect(ok).To(BeTrue())
			Expect(merr.Errors).To(HaveLen(2))
			Expect(err.Error()).To(ContainSubstring("bad.md"))
			Expect(err.Error()).To(ContainSubstring("worse.md"))
		})
	})
	When("fail fast is set", func() {
		BeforeEach(func() {
			failFast = true
		})
		It("returns the first error", func() {
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(Equal("processing bad.md failed"))
			Expect(atomic.LoadInt32(&processed)).To(BeNumerically("<", 5))
		})
	})
	When("all tasks succeed", func() {
		BeforeEach(func() {
			tasks = []interface{}{"a.md", "c.md"}
		})
		It("returns no error", func() {
			Expect(err).To(BeNil())
			Expect(atomic.LoadInt32(&processed)).To(Equal(int32(2)))
		})
	})
})
