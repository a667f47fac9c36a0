// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package rewrite

import (
	"fmt"
	"strings"

	"github.com/gardener/mdscan/pkg/markdown"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// Substitution replaces the From prefix of a URL with To
type Substitution struct {
	From string `yaml:"from" mapstructure:"from"`
	To   string `yaml:"to" mapstructure:"to"`
}

// Rules is a set of document transformations
type Rules struct {
	// Links are URL prefix substitutions applied to inline links
	Links []Substitution
	// LinkReferences are URL prefix substitutions applied to link
	// reference definitions
	LinkReferences []Substitution
	// Languages maps fenced code block languages to their replacement.
	// The "" key matches fences without a language.
	Languages map[string]string
	// FormatTables pads the columns of every table
	FormatTables bool
}

// Stats counts the changes made by Rules.Apply
type Stats struct {
	Links          int `json:"links" yaml:"links"`
	LinkReferences int `json:"linkReferences" yaml:"linkReferences"`
	Languages      int `json:"languages" yaml:"languages"`
	Tables         int `json:"tables" yaml:"tables"`
}

// Total is the sum of all changes
func (s Stats) Total() int {
	return s.Links + s.LinkReferences + s.Languages + s.Tables
}

// Add accumulates other into s
func (s *Stats) Add(other Stats) {
	s.Links += other.Links
	s.LinkReferences += other.LinkReferences
	s.Languages += other.Languages
	s.Tables += other.Tables
}

func (s Stats) String() string {
	return fmt.Sprintf("%d links, %d link references, %d code blocks, %d tables", s.Links, s.LinkReferences, s.Languages, s.Tables)
}

// Validate checks the rules for substitutions that would match every URL
func (r *Rules) Validate() error {
	var errs *multierror.Error
	for i, s := range r.Links {
		if len(s.From) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("links[%d]: empty from", i))
		}
	}
	for i, s := range r.LinkReferences {
		if len(s.From) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("linkReferences[%d]: empty from", i))
		}
	}
	return errs.ErrorOrNil()
}

// IsEmpty reports whether applying the rules can change a document
func (r *Rules) IsEmpty() bool {
	return len(r.Links) == 0 && len(r.LinkReferences) == 0 && len(r.Languages) == 0 && !r.FormatTables
}

// Apply runs the link, link reference, language and table rules on doc, in
// that order. Front matter is left untouched.
func (r *Rules) Apply(doc string) (string, Stats) {
	var stats Stats
	fm, content, err := markdown.SplitFrontMatter(doc)
	if err != nil {
		// an unclosed front matter is plain content
		fm, content = markdown.FrontMatter{}, doc
	}
	if len(r.Links) > 0 {
		content = markdown.ReplaceLinks(content, func(full, name, reference, url string) string {
			to, ok := substitute(r.Links, url)
			if !ok {
				return full
			}
			stats.Links++
			klog.V(6).Infof("rewriting link %s: %s -> %s", name, url, to)
			return full[:len(full)-len(url)-1] + to + ")"
		})
	}
	if len(r.LinkReferences) > 0 {
		content = markdown.ReplaceLinkReferences(content, func(full, name, url, title string) string {
			to, ok := substitute(r.LinkReferences, url)
			if !ok {
				return full
			}
			at := indexDefinitionURL(full, name, url)
			if at < 0 {
				return full
			}
			stats.LinkReferences++
			klog.V(6).Infof("rewriting link reference %s: %s -> %s", name, url, to)
			return full[:at] + to + full[at+len(url):]
		})
	}
	if len(r.Languages) > 0 {
		content = markdown.ReplaceCodeBlocks(content, func(full, language, body string) string {
			to, ok := r.Languages[language]
			if !ok || to == language {
				return full
			}
			at := indexFence(full)
			if at < 0 {
				return full
			}
			stats.Languages++
			klog.V(6).Infof("renaming code block language %q -> %q", language, to)
			return full[:at] + to + full[at+len(language):]
		})
	}
	if r.FormatTables {
		content = markdown.ReplaceTables(content, func(full string, rows [][]string) string {
			formatted := formatTable(full, rows)
			if formatted != full {
				stats.Tables++
			}
			return formatted
		})
	}
	return fm.Block + content, stats
}

// substitute returns url with the prefix of the first matching
// substitution replaced
func substitute(subs []Substitution, url string) (string, bool) {
	if len(url) == 0 {
		return url, false
	}
	for _, s := range subs {
		if strings.HasPrefix(url, s.From) {
			return s.To + url[len(s.From):], true
		}
	}
	return url, false
}

// indexDefinitionURL returns the index of url in a link reference
// definition, after its `[name]:` label, optional blanks and `<`
func indexDefinitionURL(full, name, url string) int {
	i := len(full) - len(strings.TrimLeft(full, " \t"))
	i += len("[") + len(name) + len("]:")
	for i < len(full) && (full[i] == ' ' || full[i] == '\t') {
		i++
	}
	if strings.HasPrefix(full[i:], "<"+url) {
		return i + 1
	}
	if strings.HasPrefix(full[i:], url) {
		return i
	}
	return -1
}

// indexFence returns the index of the language of a fenced code block,
// right after the opening backticks, or -1 for indented code blocks
func indexFence(full string) int {
	i := 0
	for i < len(full) && i < 3 && full[i] == ' ' {
		i++
	}
	if !strings.HasPrefix(full[i:], "```") {
		return -1
	}
	return i + 3
}
