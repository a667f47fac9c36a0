// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import "regexp"

// link reference definition line: [name, url, title]
var linkReferenceRgx = regexp.MustCompile(`^[ \t]*\[([^\n\r]*?)\]:[ \t]*<?([>\S]*?)>?(?:[ \t]*['"(]([^\n\r]*?)['")])?[ \t]*$`)

// LinkReference is a link reference definition `[name]: url "title"`
type LinkReference struct {
	// Full is the definition as it appears in the document, without the
	// line terminator
	Full string `json:"full" yaml:"full"`
	// Name is the reference label
	Name string `json:"name" yaml:"name"`
	// URL is the destination, without enclosing angle brackets
	URL string `json:"url" yaml:"url"`
	// Title is the optional title, empty when absent
	Title string `json:"title" yaml:"title"`
}

// LinkReferenceMatchFunc is a callback function invoked on each link
// reference definition by ForEachLinkReference
type LinkReferenceMatchFunc func(full, name, url, title string)

// LinkReferenceReplaceFunc is a callback function invoked on each link
// reference definition by ReplaceLinkReferences. The returned string
// replaces full.
type LinkReferenceReplaceFunc func(full, name, url, title string) string

type linkReferenceMatch struct {
	span
	name  string
	url   string
	title string
}

// findLinkReferences matches the definitions line by line. A line ends at
// LF, CR or CRLF and the terminator is not part of the match.
func findLinkReferences(text string) []linkReferenceMatch {
	matches := []linkReferenceMatch{}
	for b := 0; b < len(text); b++ {
		e := skipUntilLineEnd(text, b)
		if m := linkReferenceRgx.FindStringSubmatchIndex(text[b:e]); m != nil {
			lr := linkReferenceMatch{
				span: span{start: b + m[0], end: b + m[1]},
				name: text[b+m[2] : b+m[3]],
				url:  text[b+m[4] : b+m[5]],
			}
			if m[6] >= 0 {
				lr.title = text[b+m[6] : b+m[7]]
			}
			matches = append(matches, lr)
		}
		b = e
	}
	return matches
}

// ForEachLinkReference invokes fn on every link reference definition in
// text, in document order. Definitions in code blocks are not reported.
func ForEachLinkReference(text string, fn LinkReferenceMatchFunc) {
	if fn == nil {
		return
	}
	masked, tags := MaskCodeBlocks(text)
	for _, m := range findLinkReferences(masked) {
		fn(tags.restore(masked[m.start:m.end]), m.name, m.url, m.title)
	}
}

// LinkReferences returns the link reference definitions in text
func LinkReferences(text string) []LinkReference {
	refs := []LinkReference{}
	ForEachLinkReference(text, func(full, name, url, title string) {
		refs = append(refs, LinkReference{Full: full, Name: name, URL: url, Title: title})
	})
	return refs
}

// ReplaceLinkReferences returns text with each link reference definition
// replaced by the string fn returns for it. Code blocks are restored
// unchanged and their content is never passed to fn.
func ReplaceLinkReferences(text string, fn LinkReferenceReplaceFunc) string {
	if fn == nil {
		return text
	}
	masked, tags := MaskCodeBlocks(text)
	matches := findLinkReferences(masked)
	spans := make([]span, len(matches))
	for i, m := range matches {
		spans[i] = m.span
	}
	replaced := replaceSpans(masked, spans, func(i int) string {
		m := matches[i]
		return fn(tags.restore(masked[m.start:m.end]), m.name, m.url, m.title)
	})
	return UnmaskCodeBlocks(replaced, tags)
}
