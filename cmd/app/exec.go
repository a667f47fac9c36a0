// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gardener/mdscan/cmd/configuration"
	"github.com/gardener/mdscan/pkg/jobs"
	"github.com/gardener/mdscan/pkg/report"
	"github.com/gardener/mdscan/pkg/writers"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func execReport(vip *viper.Viper, kind report.Kind, args []string, out io.Writer) error {
	var options reportOptions
	if err := vip.Unmarshal(&options); err != nil {
		return err
	}
	format := report.Format(options.Output)
	if format != report.YAML && format != report.JSON {
		return fmt.Errorf("unsupported output format %q, must be one of: yaml, json", options.Output)
	}
	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}
	docs := make([]*report.Document, 0, len(inputs))
	for _, in := range inputs {
		source, err := os.ReadFile(in.source)
		if err != nil {
			return fmt.Errorf("reading %s failed: %w", in.source, err)
		}
		doc, err := report.New(in.source, source, kind)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	return report.Write(out, docs, format)
}

func execRewrite(ctx context.Context, vip *viper.Viper, loader configuration.Loader, args []string, out io.Writer) error {
	var options rewriteOptions
	if err := vip.Unmarshal(&options); err != nil {
		return err
	}
	if len(options.ConfigPath) > 0 {
		loader = configuration.FileLoader(options.ConfigPath)
	}
	config, err := loader.Load()
	if err != nil {
		return err
	}
	rules, err := newRules(&options, config, vip.IsSet)
	if err != nil {
		return err
	}
	if err := validateRewriteOptions(&options); err != nil {
		return err
	}
	if rules.IsEmpty() {
		klog.Warning("no rewrite rules set, documents are copied unchanged")
	}
	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}

	w := &documentWorker{rules: rules}
	var dryRunWriter writers.DryRunWriter
	switch {
	case options.DryRun:
		dryRunWriter = writers.NewDryRunWritersFactory(out)
		w.writer = dryRunWriter.GetWriter(options.Destination)
	case options.InPlace:
		w.writer = &writers.FSWriter{}
		w.inPlace = true
	default:
		w.writer = &writers.FSWriter{Root: options.Destination}
		klog.Infof("Output dir: %s", options.Destination)
	}
	if options.InPlace {
		for _, in := range inputs {
			in.target = in.source
		}
	}

	tasks := make([]interface{}, len(inputs))
	for i, in := range inputs {
		tasks[i] = in
	}
	job := &jobs.Job{
		ID:         "Rewrite",
		MinWorkers: 1,
		MaxWorkers: options.Workers,
		FailFast:   options.FailFast,
		Worker:     jobs.WorkerFunc(w.work),
	}
	klog.Infof("Rewriting %d documents", len(inputs))
	if err := job.Dispatch(ctx, tasks); err != nil {
		return err
	}
	klog.Infof("Rewrote %d of %d documents: %s", w.changed, len(inputs), w.stats)
	if dryRunWriter != nil {
		return dryRunWriter.Flush()
	}
	return nil
}
