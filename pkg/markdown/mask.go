// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"fmt"
	"strings"
)

// tagPrefix prefixes the name of every code block placeholder tag
const tagPrefix = "AUTO_CODE_BLOCK_"

// Tag binds a placeholder tag name to the code block it stands for
type Tag struct {
	// Name is the synthetic token written in the placeholder, e.g. AUTO_CODE_BLOCK_0
	Name string
	// Full is the original code block text
	Full string
}

// Tags is the mapping produced by MaskCodeBlocks, in document order.
// It belongs to a single mask/unmask round trip.
type Tags []Tag

// Lookup returns the code block text for the tag name
func (t Tags) Lookup(name string) (string, bool) {
	for _, tag := range t {
		if tag.Name == name {
			return tag.Full, true
		}
	}
	return "", false
}

// restore puts back the code blocks of any placeholders in text
func (t Tags) restore(text string) string {
	if len(t) == 0 || !strings.Contains(text, tagPrefix) {
		return text
	}
	return UnmaskCodeBlocks(text, t)
}

// strip removes whole placeholders from text
func (t Tags) strip(text string) string {
	if len(t) == 0 || !strings.Contains(text, tagPrefix) {
		return text
	}
	for _, tag := range t {
		if i := indexPlaceholder(text, placeholder(tag.Name)); i >= 0 {
			text = text[:i] + text[i+len(placeholder(tag.Name)):]
		}
	}
	return text
}

// placeholderEnd returns the end of the placeholder starting at offset i
// of text, or i when there is none
func (t Tags) placeholderEnd(text string, i int) int {
	if i > 0 && text[i-1] != '\n' || !strings.HasPrefix(text[i:], "```\n"+tagPrefix) {
		return i
	}
	for _, tag := range t {
		if p := placeholder(tag.Name); strings.HasPrefix(text[i:], p) {
			return i + len(p)
		}
	}
	return i
}

// placeholder returns the fenced 3-line block that stands in for a code block
func placeholder(name string) string {
	return "```\n" + name + "\n```\n"
}

// indexPlaceholder returns the index of the first occurrence of p that
// starts a line, or -1. A placeholder that does not start a line was not
// written by MaskCodeBlocks.
func indexPlaceholder(text, p string) int {
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], p)
		if i < 0 {
			return -1
		}
		i += offset
		if i == 0 || text[i-1] == '\n' {
			return i
		}
		offset = i + 1
	}
	return -1
}

// MaskCodeBlocks replaces every code block in text with a placeholder code
// block holding a synthetic tag, AUTO_CODE_BLOCK_<n> for the n-th block.
// It returns the masked text and the tags needed to restore the original
// with UnmaskCodeBlocks.
func MaskCodeBlocks(text string) (string, Tags) {
	tags := Tags{}
	masked := ReplaceCodeBlocks(text, func(full, _, _ string) string {
		name := fmt.Sprintf("%s%d", tagPrefix, len(tags))
		tags = append(tags, Tag{Name: name, Full: full})
		return placeholder(name)
	})
	return masked, tags
}

// UnmaskCodeBlocks replaces the placeholder of each tag in text with the
// original code block. Tags whose placeholder is not found are ignored.
func UnmaskCodeBlocks(text string, tags Tags) string {
	// last tag first: a restored block may itself look like the placeholder
	// of an earlier tag, but only after that placeholder's position
	for i := len(tags) - 1; i >= 0; i-- {
		tag := tags[i]
		p := placeholder(tag.Name)
		at := indexPlaceholder(text, p)
		if at < 0 {
			continue
		}
		text = text[:at] + tag.Full + text[at+len(p):]
	}
	return text
}
