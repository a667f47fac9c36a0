// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import "github.com/gardener/mdscan/pkg/rewrite"

// Config is the rewrite configuration file
type Config struct {
	// Links are URL prefix substitutions for inline links, first match wins
	Links []rewrite.Substitution `yaml:"links,omitempty"`
	// LinkReferences are URL prefix substitutions for link reference definitions
	LinkReferences []rewrite.Substitution `yaml:"linkReferences,omitempty"`
	// Languages maps fenced code block languages to their replacement
	Languages    map[string]string `yaml:"languages,omitempty"`
	FormatTables *bool             `yaml:"formatTables,omitempty"`
	FailFast     *bool             `yaml:"failFast,omitempty"`
	Workers      *int              `yaml:"workers,omitempty"`
}
