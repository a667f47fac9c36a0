// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gardener/mdscan/pkg/rewrite"
)

// FSWriter is implementation of Writer interface for writing documents to the file system
type FSWriter struct {
	Root string
}

func (f *FSWriter) Write(name, path string, content []byte, _ *rewrite.Stats) error {
	if content == nil {
		return nil
	}
	p := filepath.Join(f.Root, path)
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return fmt.Errorf("creating %s failed: %w", p, err)
	}
	filePath := filepath.Join(p, name)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}
	return nil
}
