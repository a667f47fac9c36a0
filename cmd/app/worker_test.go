// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gardener/mdscan/pkg/rewrite"
	"github.com/gardener/mdscan/pkg/writers/writersfakes"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSources(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(os.TempDir(), fmt.Sprintf("test%s", uuid.New().String()))
	t.Cleanup(func() { os.RemoveAll(dir) })
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

func TestDocumentWorker(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"changed.md":   "[a](./a.md)\n",
		"unchanged.md": "[b](/b.md)\n",
	})
	rules := &rewrite.Rules{Links: []rewrite.Substitution{{From: "./", To: "/docs/"}}}

	testCases := []struct {
		name      string
		inPlace   bool
		source    string
		target    string
		wantCalls int
		wantName  string
		wantPath  string
		wantDoc   string
		wantStats rewrite.Stats
	}{
		{
			name:      "writes_changed_document_under_target_dir",
			source:    "changed.md",
			target:    "guides/intro/changed.md",
			wantCalls: 1,
			wantName:  "changed.md",
			wantPath:  "guides/intro",
			wantDoc:   "[a](/docs/a.md)\n",
			wantStats: rewrite.Stats{Links: 1},
		},
		{
			name:      "copies_unchanged_document",
			source:    "unchanged.md",
			target:    "unchanged.md",
			wantCalls: 1,
			wantName:  "unchanged.md",
			wantPath:  ".",
			wantDoc:   "[b](/b.md)\n",
		},
		{
			name:      "in_place_writes_changed_document",
			inPlace:   true,
			source:    "changed.md",
			target:    "changed.md",
			wantCalls: 1,
			wantName:  "changed.md",
			wantPath:  ".",
			wantDoc:   "[a](/docs/a.md)\n",
			wantStats: rewrite.Stats{Links: 1},
		},
		{
			name:      "in_place_skips_unchanged_document",
			inPlace:   true,
			source:    "unchanged.md",
			target:    "unchanged.md",
			wantCalls: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			writer := &writersfakes.FakeWriter{}
			w := &documentWorker{rules: rules, writer: writer, inPlace: tc.inPlace}
			in := &input{source: filepath.Join(dir, tc.source), target: tc.target}

			require.Nil(t, w.work(context.Background(), in))
			require.Equal(t, tc.wantCalls, writer.WriteCallCount())
			if tc.wantCalls == 0 {
				assert.Equal(t, 0, w.changed)
				return
			}
			name, path, content, stats := writer.WriteArgsForCall(0)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantPath, path)
			assert.Equal(t, tc.wantDoc, string(content))
			require.NotNil(t, stats)
			assert.Equal(t, tc.wantStats, *stats)
			assert.Equal(t, tc.wantStats, w.stats)
		})
	}
}

func TestDocumentWorkerErrors(t *testing.T) {
	dir := writeSources(t, map[string]string{"doc.md": "text\n"})
	writer := &writersfakes.FakeWriter{}
	writer.WriteReturns(errors.New("disk full"))
	w := &documentWorker{rules: &rewrite.Rules{}, writer: writer}

	err := w.work(context.Background(), &input{source: filepath.Join(dir, "doc.md"), target: "doc.md"})
	require.NotNil(t, err)
	assert.EqualError(t, err, "disk full")

	err = w.work(context.Background(), &input{source: filepath.Join(dir, "missing.md"), target: "missing.md"})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "missing.md")

	err = w.work(context.Background(), "not an input")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "unexpected task type string")
	assert.Equal(t, 1, writer.WriteCallCount())
}
