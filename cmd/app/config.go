// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strings"

	"github.com/gardener/mdscan/cmd/configuration"
	"github.com/gardener/mdscan/pkg/rewrite"
	"github.com/hashicorp/go-multierror"
)

// newRules merges the rewrite flags with the configuration file. Explicitly
// set flags take priority, flag substitutions are tried before the
// configured ones.
func newRules(o *rewriteOptions, config *configuration.Config, isSet func(string) bool) (*rewrite.Rules, error) {
	var errs *multierror.Error
	links, err := parseSubstitutions("link", o.Links)
	errs = multierror.Append(errs, err)
	linkRefs, err := parseSubstitutions("link-reference", o.LinkReferences)
	errs = multierror.Append(errs, err)
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if config == nil {
		config = &configuration.Config{}
	}
	rules := &rewrite.Rules{
		Links:          append(links, config.Links...),
		LinkReferences: append(linkRefs, config.LinkReferences...),
		Languages:      map[string]string{},
		FormatTables:   o.FormatTables,
	}
	for k, v := range config.Languages {
		rules.Languages[k] = v
	}
	for k, v := range o.Languages {
		rules.Languages[k] = v
	}
	if !isSet("format-tables") && config.FormatTables != nil {
		rules.FormatTables = *config.FormatTables
	}
	if !isSet("fail-fast") && config.FailFast != nil {
		o.FailFast = *config.FailFast
	}
	if !isSet("workers") && config.Workers != nil {
		o.Workers = *config.Workers
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// parseSubstitutions parses FROM=TO flag values
func parseSubstitutions(flagName string, values []string) ([]rewrite.Substitution, error) {
	var errs *multierror.Error
	subs := make([]rewrite.Substitution, 0, len(values))
	for _, v := range values {
		from, to, ok := strings.Cut(v, "=")
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("--%s %q: expected FROM=TO", flagName, v))
			continue
		}
		subs = append(subs, rewrite.Substitution{From: from, To: to})
	}
	return subs, errs.ErrorOrNil()
}

// validateRewriteOptions checks the destination flags for conflicts
func validateRewriteOptions(o *rewriteOptions) error {
	var errs *multierror.Error
	if o.InPlace && len(o.Destination) > 0 {
		errs = multierror.Append(errs, fmt.Errorf("--in-place and --destination are mutually exclusive"))
	}
	if !o.InPlace && !o.DryRun && len(o.Destination) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("one of --destination, --in-place or --dry-run is required"))
	}
	if o.Workers < 1 {
		errs = multierror.Append(errs, fmt.Errorf("--workers must be positive, got %d", o.Workers))
	}
	return errs.ErrorOrNil()
}
