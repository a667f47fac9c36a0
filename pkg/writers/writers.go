// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import "github.com/gardener/mdscan/pkg/rewrite"

// Writer writes a processed document with name to a given path
//
//counterfeiter:generate . Writer
type Writer interface {
	Write(name, path string, content []byte, stats *rewrite.Stats) error
}
