// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import "regexp"

var (
	// fenced block: [language, body] or indented block: [indented body]
	codeBlockRgx = regexp.MustCompile("(?m)^ {0,3}```(\\w*)\\s*\\n([\\s\\S]*?)^ {0,3}```[ \\t]*\\n|((?:^(?: {4}|\\t)[\\s\\S]*?\\n)+)")
	// one level of code block indentation at the start of each line
	indentRgx = regexp.MustCompile(`(?m)^(?: {4}|\t)`)
)

// CodeBlock is a fenced or indented markdown code block
type CodeBlock struct {
	// Full is the code block as it appears in the document, fences
	// and indentation included
	Full string `json:"full" yaml:"full"`
	// Language is the info string of a fenced code block. It is empty
	// for indented blocks and for fences without one.
	Language string `json:"language" yaml:"language"`
	// Body is the code block content without fence lines or indentation
	Body string `json:"body" yaml:"body"`
}

// CodeBlockMatchFunc is a callback function invoked on each code block
// by ForEachCodeBlock
type CodeBlockMatchFunc func(full, language, body string)

// CodeBlockReplaceFunc is a callback function invoked on each code block
// by ReplaceCodeBlocks. The returned string replaces full.
type CodeBlockReplaceFunc func(full, language, body string) string

type codeBlockMatch struct {
	span
	language string
	body     string
}

func findCodeBlocks(text string) []codeBlockMatch {
	idx := codeBlockRgx.FindAllStringSubmatchIndex(text, -1)
	matches := make([]codeBlockMatch, 0, len(idx))
	for _, m := range idx {
		cb := codeBlockMatch{span: span{start: m[0], end: m[1]}}
		if m[4] >= 0 {
			if m[2] >= 0 {
				cb.language = text[m[2]:m[3]]
			}
			cb.body = text[m[4]:m[5]]
		} else {
			cb.body = unindentCodeBlock(text[m[6]:m[7]])
		}
		matches = append(matches, cb)
	}
	return matches
}

// unindentCodeBlock strips 4 spaces or a tab from the start of every line
func unindentCodeBlock(text string) string {
	return indentRgx.ReplaceAllString(text, "")
}

// ForEachCodeBlock invokes fn on every code block in text, in document order
func ForEachCodeBlock(text string, fn CodeBlockMatchFunc) {
	if fn == nil {
		return
	}
	for _, m := range findCodeBlocks(text) {
		fn(text[m.start:m.end], m.language, m.body)
	}
}

// CodeBlocks returns the code blocks in text
func CodeBlocks(text string) []CodeBlock {
	blocks := []CodeBlock{}
	ForEachCodeBlock(text, func(full, language, body string) {
		blocks = append(blocks, CodeBlock{Full: full, Language: language, Body: body})
	})
	return blocks
}

// ReplaceCodeBlocks returns text with each code block replaced by the
// string fn returns for it. Text outside code blocks is left unchanged.
func ReplaceCodeBlocks(text string, fn CodeBlockReplaceFunc) string {
	if fn == nil {
		return text
	}
	matches := findCodeBlocks(text)
	spans := make([]span, len(matches))
	for i, m := range matches {
		spans[i] = m.span
	}
	return replaceSpans(text, spans, func(i int) string {
		m := matches[i]
		return fn(text[m.start:m.end], m.language, m.body)
	})
}
