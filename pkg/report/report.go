// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gardener/mdscan/pkg/markdown"
	"gopkg.in/yaml.v3"
)

// Kind selects the constructs listed in a Document
type Kind string

const (
	// KindCodeBlocks lists code blocks
	KindCodeBlocks Kind = "codeblocks"
	// KindLinks lists inline and reference links
	KindLinks Kind = "links"
	// KindLinkReferences lists link reference definitions
	KindLinkReferences Kind = "link-references"
	// KindTables lists tables
	KindTables Kind = "tables"
	// KindAll lists all of the above
	KindAll Kind = "inventory"
)

// Format is the serialization of a report
type Format string

const (
	// YAML format
	YAML Format = "yaml"
	// JSON format
	JSON Format = "json"
)

// Document is the inventory of a markdown file
type Document struct {
	Path           string                   `json:"path" yaml:"path"`
	Title          string                   `json:"title,omitempty" yaml:"title,omitempty"`
	Meta           map[string]interface{}   `json:"meta,omitempty" yaml:"meta,omitempty"`
	CodeBlocks     []markdown.CodeBlock     `json:"codeBlocks,omitempty" yaml:"codeBlocks,omitempty"`
	Links          []markdown.Link          `json:"links,omitempty" yaml:"links,omitempty"`
	LinkReferences []markdown.LinkReference `json:"linkReferences,omitempty" yaml:"linkReferences,omitempty"`
	Tables         []markdown.Table         `json:"tables,omitempty" yaml:"tables,omitempty"`
}

// New creates the inventory of source, listing the constructs of kind
func New(path string, source []byte, kind Kind) (*Document, error) {
	title, fm, err := outline(source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s failed: %w", path, err)
	}
	d := &Document{Path: path, Title: title, Meta: fm}
	_, content, err := markdown.SplitFrontMatter(string(source))
	if err != nil {
		content = string(source)
	}
	switch kind {
	case KindCodeBlocks:
		d.CodeBlocks = markdown.CodeBlocks(content)
	case KindLinks:
		d.Links = markdown.Links(content)
	case KindLinkReferences:
		d.LinkReferences = markdown.LinkReferences(content)
	case KindTables:
		d.Tables = markdown.Tables(content)
	case KindAll:
		d.CodeBlocks = markdown.CodeBlocks(content)
		d.Links = markdown.Links(content)
		d.LinkReferences = markdown.LinkReferences(content)
		d.Tables = markdown.Tables(content)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	return d, nil
}

// Write serializes docs to w
func Write(w io.Writer, docs []*Document, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("encoding yaml failed: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("encoding json failed: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported output format %q", format)
}
