// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import "strings"

// span is a byte range [start, end) in a scanned text
type span struct {
	start int
	end   int
}

// isLineEnd returns true if c terminates a line
func isLineEnd(c byte) bool {
	return c == '\n' || c == '\r'
}

// isBlank returns true if c is a space or a tab
func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// skipBlanks advances i over spaces and tabs
func skipBlanks(data string, i int) int {
	n := len(data)
	for i < n && isBlank(data[i]) {
		i++
	}
	return i
}

// skipUntilLineEnd advances i as long as data[i] is not a line terminator
func skipUntilLineEnd(data string, i int) int {
	n := len(data)
	for i < n && !isLineEnd(data[i]) {
		i++
	}
	return i
}

// skipUntilCharInLine advances i as long as data[i] != c without crossing
// a line terminator. The returned index points at c, or it is not a valid
// match position when data[i] != c.
func skipUntilCharInLine(data string, i int, c byte) int {
	n := len(data)
	for i < n && data[i] != c && !isLineEnd(data[i]) {
		i++
	}
	return i
}

// hasCharAt returns true if data[i] == c
func hasCharAt(data string, i int, c byte) bool {
	return i >= 0 && i < len(data) && data[i] == c
}

// replaceSpans rebuilds text with every span replaced by rewrite(i), where i
// is the span index. Spans must be ordered and must not overlap.
func replaceSpans(text string, spans []span, rewrite func(i int) string) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i, s := range spans {
		b.WriteString(text[last:s.start])
		b.WriteString(rewrite(i))
		last = s.end
	}
	b.WriteString(text[last:])
	return b.String()
}
