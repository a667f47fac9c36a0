// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

var markdownExtensions = []string{".md", ".markdown"}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range markdownExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// collectInputs resolves the command arguments into the files to process.
// Files are taken as they are, directories are searched for markdown files.
// All invalid arguments are reported together.
func collectInputs(args []string) ([]*input, error) {
	var (
		errs   *multierror.Error
		inputs []*input
	)
	for _, arg := range args {
		stat, err := os.Stat(arg)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid input %s: %w", arg, err))
			continue
		}
		if !stat.IsDir() {
			inputs = append(inputs, &input{source: arg, target: filepath.Base(arg)})
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isMarkdown(path) {
				return nil
			}
			rel, err := filepath.Rel(arg, path)
			if err != nil {
				return err
			}
			inputs = append(inputs, &input{source: path, target: rel})
			return nil
		})
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("reading directory %s failed: %w", arg, err))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		klog.Warningf("no markdown files found in %v", args)
	}
	return inputs, nil
}
