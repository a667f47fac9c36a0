// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import "strings"

// Table is a pipe table: a header line, a separator line with a `|---` or
// `---|` run, and the following lines up to a blank line or the end of text
type Table struct {
	// Full is the table as it appears in the document
	Full string `json:"full" yaml:"full"`
	// Rows are the table cells. Rows[0] is the header; the separator line
	// is not a row.
	Rows [][]string `json:"rows" yaml:"rows"`
}

// TableMatchFunc is a callback function invoked on each table by ForEachTable
type TableMatchFunc func(full string, rows [][]string)

// TableReplaceFunc is a callback function invoked on each table by
// ReplaceTables. The returned string replaces full.
type TableReplaceFunc func(full string, rows [][]string) string

// findTables scans masked text for tables. A table never starts inside a
// placeholder of tags, so its header is always document text.
func findTables(text string, tags Tags) []span {
	matches := []span{}
	for i := 0; i < len(text); {
		if end := tags.placeholderEnd(text, i); end > i {
			i = end
			continue
		}
		end, ok := scanTable(text, i)
		if !ok {
			// the rest of the line has the same header and separator lines
			if j := skipUntilLineEnd(text, i); j > i {
				i = j
			} else {
				i++
			}
			continue
		}
		matches = append(matches, span{start: i, end: end})
		i = end
	}
	return matches
}

// scanTable matches a table starting at offset and returns its end
func scanTable(text string, offset int) (int, bool) {
	n := len(text)
	// header
	i := skipUntilLineEnd(text, offset)
	if !hasCharAt(text, i, '\n') {
		return 0, false
	}
	// separator
	sepB := i + 1
	sepE := skipUntilLineEnd(text, sepB)
	i = indexSeparatorEnd(text[sepB:sepE])
	if i < 0 {
		return 0, false
	}
	// rows, up to a newline followed by a blank line, or the end of text
	for i += sepB; i < n; i++ {
		if text[i] != '\n' {
			continue
		}
		if j := skipBlanks(text, i+1); hasCharAt(text, j, '\n') {
			return i + 1, true
		}
	}
	return n, true
}

// indexSeparatorEnd returns the end of the first `|---` or `---|` run in
// line, blanks allowed between the pipe and the dashes, or -1
func indexSeparatorEnd(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] == '|' {
			if j := skipBlanks(line, i+1); strings.HasPrefix(line[j:], "---") {
				return j + 3
			}
		}
		if strings.HasPrefix(line[i:], "---") {
			if j := skipBlanks(line, i+3); hasCharAt(line, j, '|') {
				return j + 1
			}
		}
	}
	return -1
}

// tableRows splits a table into rows of cells. The separator line, always
// the second line of a table, does not make a row.
func tableRows(full string) [][]string {
	lines := strings.Split(strings.TrimSpace(full), "\n")
	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		if i == 1 {
			continue
		}
		rows = append(rows, tableCells(line))
	}
	return rows
}

// tableCells splits a table line on pipes, after dropping one leading and
// one trailing pipe
func tableCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// ForEachTable invokes fn on every table in text, in document order. Tables
// are never recognized inside code blocks, and code blocks adjoining a
// table do not make rows.
func ForEachTable(text string, fn TableMatchFunc) {
	if fn == nil {
		return
	}
	masked, tags := MaskCodeBlocks(text)
	for _, m := range findTables(masked, tags) {
		full := masked[m.start:m.end]
		fn(tags.restore(full), tableRows(tags.strip(full)))
	}
}

// Tables returns the tables in text
func Tables(text string) []Table {
	tables := []Table{}
	ForEachTable(text, func(full string, rows [][]string) {
		tables = append(tables, Table{Full: full, Rows: rows})
	})
	return tables
}

// ReplaceTables returns text with each table replaced by the string fn
// returns for it. Code blocks are restored unchanged and their content is
// never passed to fn.
func ReplaceTables(text string, fn TableReplaceFunc) string {
	if fn == nil {
		return text
	}
	masked, tags := MaskCodeBlocks(text)
	matches := findTables(masked, tags)
	replaced := replaceSpans(masked, matches, func(i int) string {
		full := masked[matches[i].start:matches[i].end]
		return fn(tags.restore(full), tableRows(tags.strip(full)))
	})
	return UnmaskCodeBlocks(replaced, tags)
}
