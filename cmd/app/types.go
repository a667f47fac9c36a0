// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

type reportOptions struct {
	Output string `mapstructure:"output"`
}

type rewriteOptions struct {
	Destination    string            `mapstructure:"destination"`
	InPlace        bool              `mapstructure:"in-place"`
	DryRun         bool              `mapstructure:"dry-run"`
	Workers        int               `mapstructure:"workers"`
	FailFast       bool              `mapstructure:"fail-fast"`
	ConfigPath     string            `mapstructure:"config"`
	Links          []string          `mapstructure:"link"`
	LinkReferences []string          `mapstructure:"link-reference"`
	Languages      map[string]string `mapstructure:"language"`
	FormatTables   bool              `mapstructure:"format-tables"`
}

// input is a markdown file to process
type input struct {
	// source is the path the file is read from
	source string
	// target is the path the file is written to, relative to the destination
	target string
}
