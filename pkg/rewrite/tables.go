// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package rewrite

import (
	"strings"
	"unicode/utf8"

	"github.com/gardener/mdscan/pkg/markdown"
	"k8s.io/klog/v2"
)

type alignment int

const (
	alignNone alignment = iota
	alignLeft
	alignRight
	alignCenter
)

// formatTable re-emits a table with padded columns and a regenerated
// separator line. Tables that swallowed an adjoining code block are
// returned unchanged.
func formatTable(full string, rows [][]string) string {
	if len(rows) == 0 || strings.Contains(full, "\r") {
		return full
	}
	if len(markdown.CodeBlocks(full)) > 0 {
		klog.V(6).Infof("table followed by a code block left unformatted")
		return full
	}
	lines := strings.Split(strings.TrimSpace(full), "\n")
	if len(lines) < 2 {
		return full
	}
	aligns := alignments(lines[1])

	columns := 0
	for _, r := range rows {
		if len(r) > columns {
			columns = len(r)
		}
	}
	widths := make([]int, columns)
	for c := range widths {
		widths[c] = 3
		if alignOf(aligns, c) == alignCenter {
			widths[c] = 5
		} else if alignOf(aligns, c) != alignNone {
			widths[c] = 4
		}
		for _, r := range rows {
			if c < len(r) {
				if w := utf8.RuneCountInString(r[c]); w > widths[c] {
					widths[c] = w
				}
			}
		}
	}

	var b strings.Builder
	for i, r := range rows {
		writeRow(&b, r, widths, aligns)
		if i == 0 {
			writeSeparator(&b, widths, aligns)
		}
	}
	out := b.String()
	if !strings.HasSuffix(full, "\n") {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

func writeRow(b *strings.Builder, cells []string, widths []int, aligns []alignment) {
	b.WriteString("|")
	for c, w := range widths {
		cell := ""
		if c < len(cells) {
			cell = cells[c]
		}
		pad := w - utf8.RuneCountInString(cell)
		b.WriteString(" ")
		switch alignOf(aligns, c) {
		case alignRight:
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		case alignCenter:
			b.WriteString(strings.Repeat(" ", pad/2))
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad-pad/2))
		default:
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, widths []int, aligns []alignment) {
	b.WriteString("|")
	for c, w := range widths {
		b.WriteString(" ")
		switch alignOf(aligns, c) {
		case alignLeft:
			b.WriteString(":" + strings.Repeat("-", w-1))
		case alignRight:
			b.WriteString(strings.Repeat("-", w-1) + ":")
		case alignCenter:
			b.WriteString(":" + strings.Repeat("-", w-2) + ":")
		default:
			b.WriteString(strings.Repeat("-", w))
		}
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

// alignments reads the column alignments off a separator line
func alignments(line string) []alignment {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	aligns := make([]alignment, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		left, right := strings.HasPrefix(c, ":"), strings.HasSuffix(c, ":")
		switch {
		case left && right && len(c) > 1:
			aligns[i] = alignCenter
		case left:
			aligns[i] = alignLeft
		case right:
			aligns[i] = alignRight
		}
	}
	return aligns
}

func alignOf(aligns []alignment, column int) alignment {
	if column < len(aligns) {
		return aligns[column]
	}
	return alignNone
}
