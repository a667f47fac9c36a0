// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gardener/mdscan/pkg/rewrite"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates a Writer recording to this
	// DryRunWriter the documents it would write under root
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	Writer io.Writer
	mux    sync.Mutex
	files  []*file
	t1     time.Time
}

type file struct {
	path  string
	stats *rewrite.Stats
}

type writer struct {
	root string
	d    *dryRunWriter
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		files:  []*file{},
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root: root,
		d:    d,
	}
}

func (w *writer) Write(name, p string, _ []byte, stats *rewrite.Stats) error {
	f := &file{
		path:  path.Join(w.root, p, name),
		stats: stats,
	}
	w.d.mux.Lock()
	defer w.d.mux.Unlock()
	w.d.files = append(w.d.files, f)
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() error {
	var b bytes.Buffer
	d.mux.Lock()
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	d.mux.Unlock()

	b.WriteString(fmt.Sprintf("\nRewrite finished in %f seconds\n", time.Since(d.t1).Seconds()))
	if _, err := d.Writer.Write(b.Bytes()); err != nil {
		return fmt.Errorf("flushing dry run output failed: %w", err)
	}
	return nil
}

// format writes files as an indented tree, with the change stats of
// each file under it
func format(files []*file, b *bytes.Buffer) {
	seen := map[string]bool{}
	for _, f := range files {
		segments := strings.Split(strings.TrimPrefix(f.path, "/"), "/")
		for i, s := range segments {
			p := strings.Join(segments[:i+1], "/")
			if seen[p] {
				continue
			}
			seen[p] = true
			b.WriteString(strings.Repeat("  ", i))
			b.WriteString(s)
			b.WriteString("\n")
			if i == len(segments)-1 && f.stats != nil {
				b.WriteString(strings.Repeat("  ", i+1))
				b.WriteString(fmt.Sprintf("changes: %s\n", f.stats))
			}
		}
	}
}
