// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gardener/mdscan/pkg/jobs"
	"github.com/gardener/mdscan/pkg/rewrite"
	"github.com/gardener/mdscan/pkg/writers"
	"k8s.io/klog/v2"
)

// documentWorker applies rewrite rules to *input tasks
type documentWorker struct {
	rules  *rewrite.Rules
	writer writers.Writer
	// inPlace skips writing documents without changes
	inPlace bool

	mux     sync.Mutex
	stats   rewrite.Stats
	changed int
}

func (w *documentWorker) work(ctx context.Context, task interface{}) *jobs.WorkerError {
	in, ok := task.(*input)
	if !ok {
		return jobs.NewWorkerError(fmt.Errorf("unexpected task type %T", task), 0)
	}
	source, err := os.ReadFile(in.source)
	if err != nil {
		return jobs.NewWorkerError(fmt.Errorf("reading %s failed: %w", in.source, err), 0)
	}
	doc, stats := w.rules.Apply(string(source))

	w.mux.Lock()
	w.stats.Add(stats)
	if stats.Total() > 0 {
		w.changed++
	}
	w.mux.Unlock()

	if stats.Total() == 0 && w.inPlace {
		klog.V(6).Infof("%s unchanged", in.source)
		return nil
	}
	klog.V(6).Infof("%s: %s", in.source, stats)
	if err := w.writer.Write(filepath.Base(in.target), filepath.Dir(in.target), []byte(doc), &stats); err != nil {
		return jobs.NewWorkerError(err, 0)
	}
	return nil
}
