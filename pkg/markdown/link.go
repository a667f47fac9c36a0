// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

// Link is an inline `[name](url)`, a reference `[name][reference]` or a
// shortcut `[name]` markdown link. Images are never reported as links.
type Link struct {
	// Full is the link as it appears in the document
	Full string `json:"full" yaml:"full"`
	// Name is the bracketed link text
	Name string `json:"name" yaml:"name"`
	// Reference is the label of a reference link. It is empty for inline
	// links, for shortcut links and for collapsed `[name][]` links.
	Reference string `json:"reference" yaml:"reference"`
	// URL is the destination of an inline link, empty otherwise
	URL string `json:"url" yaml:"url"`
}

// LinkMatchFunc is a callback function invoked on each link by ForEachLink
type LinkMatchFunc func(full, name, reference, url string)

// LinkReplaceFunc is a callback function invoked on each link by
// ReplaceLinks. The returned string replaces full.
type LinkReplaceFunc func(full, name, reference, url string) string

type linkMatch struct {
	span
	name      string
	reference string
	url       string
	image     bool
}

// findLinks scans text for links. Images are consumed by the scan so their
// text is not reported as a link, but they are left out of the result.
func findLinks(text string) []linkMatch {
	matches := []linkMatch{}
	n := len(text)
	for i := 0; i < n; {
		if text[i] != '[' && text[i] != '!' {
			i++
			continue
		}
		m, ok := scanLink(text, i)
		if !ok {
			i++
			continue
		}
		if !m.image {
			matches = append(matches, m)
		}
		i = m.end
	}
	return matches
}

// scanLink matches a link or an image at offset. Candidate closing brackets
// of the name are tried left to right on the same line; for each one the
// inline, reference and shortcut forms are tried in that order.
func scanLink(text string, offset int) (linkMatch, bool) {
	var (
		n     = len(text)
		i     = offset
		image bool
	)
	if text[i] == '!' {
		if !hasCharAt(text, i+1, '[') {
			return linkMatch{}, false
		}
		image = true
		i++
	}
	if text[i] != '[' {
		return linkMatch{}, false
	}
	nameB := i + 1
	for nameE := nameB; nameE < n && !isLineEnd(text[nameE]); nameE++ {
		if text[nameE] != ']' {
			continue
		}
		m := linkMatch{span: span{start: offset}, name: text[nameB:nameE], image: image}
		next := nameE + 1
		// [name](url)
		if hasCharAt(text, next, '(') {
			if urlE := skipUntilCharInLine(text, next+1, ')'); hasCharAt(text, urlE, ')') {
				m.url = text[next+1 : urlE]
				m.end = urlE + 1
				return m, true
			}
		}
		// [name][reference] or [name] [reference]
		refB := next
		if hasCharAt(text, refB, ' ') && hasCharAt(text, refB+1, '[') {
			refB++
		}
		if hasCharAt(text, refB, '[') {
			if refE := skipUntilCharInLine(text, refB+1, ']'); hasCharAt(text, refE, ']') {
				m.reference = text[refB+1 : refE]
				m.end = refE + 1
				return m, true
			}
		}
		// [name], unless it opens a link reference definition
		if !hasCharAt(text, next, ':') {
			m.end = next
			return m, true
		}
	}
	return linkMatch{}, false
}

// ForEachLink invokes fn on every link in text, in document order. Links in
// code blocks are not reported.
func ForEachLink(text string, fn LinkMatchFunc) {
	if fn == nil {
		return
	}
	masked, tags := MaskCodeBlocks(text)
	for _, m := range findLinks(masked) {
		fn(tags.restore(masked[m.start:m.end]), m.name, m.reference, m.url)
	}
}

// Links returns the links in text
func Links(text string) []Link {
	links := []Link{}
	ForEachLink(text, func(full, name, reference, url string) {
		links = append(links, Link{Full: full, Name: name, Reference: reference, URL: url})
	})
	return links
}

// ReplaceLinks returns text with each link replaced by the string fn returns
// for it. Code blocks are restored unchanged and their content is never
// passed to fn.
func ReplaceLinks(text string, fn LinkReplaceFunc) string {
	if fn == nil {
		return text
	}
	masked, tags := MaskCodeBlocks(text)
	matches := findLinks(masked)
	spans := make([]span, len(matches))
	for i, m := range matches {
		spans[i] = m.span
	}
	replaced := replaceSpans(masked, spans, func(i int) string {
		m := matches[i]
		return fn(tags.restore(masked[m.start:m.end]), m.name, m.reference, m.url)
	})
	return UnmaskCodeBlocks(replaced, tags)
}
