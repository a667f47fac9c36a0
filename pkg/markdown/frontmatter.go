// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrFrontMatterNotClosed is raised to signal
// that the rules for defining a frontmatter element
// in a markdown document have been violated
var ErrFrontMatterNotClosed = errors.New("missing closing frontmatter `---`")

// FrontMatter is the leading YAML block of a document
type FrontMatter struct {
	// Block is the front matter including the `---` marks and any
	// whitespace preceding the opening mark
	Block string
	// YAML is the text between the marks
	YAML string
}

// SplitFrontMatter splits a provided document into front matter
// and content. Block + content always equals text.
func SplitFrontMatter(text string) (FrontMatter, string, error) {
	var (
		started bool
		yamlBeg int
	)
	for pos := 0; pos < len(text); {
		end := strings.IndexByte(text[pos:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += pos + 1
		}
		line := text[pos:end]
		if l := strings.TrimSpace(line); l != "---" {
			// Only whitespace is acceptable before front matter,
			// any other preceding text means there is none
			if !started && len(l) > 0 {
				return FrontMatter{}, text, nil
			}
		} else if !started {
			started = true
			yamlBeg = end
		} else {
			return FrontMatter{Block: text[:end], YAML: text[yamlBeg:pos]}, text[end:], nil
		}
		pos = end
	}
	if started {
		return FrontMatter{}, "", ErrFrontMatterNotClosed
	}
	return FrontMatter{}, text, nil
}

// Decode unmarshals the front matter YAML into v
func (f FrontMatter) Decode(v interface{}) error {
	if len(strings.TrimSpace(f.YAML)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal([]byte(f.YAML), v); err != nil {
		return fmt.Errorf("decoding front matter failed: %w", err)
	}
	return nil
}
