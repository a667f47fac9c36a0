// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var (
	// parser extension for GitHub Flavored Markdown & Frontmatter support
	extensions = []goldmark.Extender{
		extension.GFM,
		meta.Meta,
	}
	gmParser = goldmark.New(goldmark.WithExtensions(extensions...))
)

// outline parses source and returns its first level 1 heading and front
// matter
func outline(source []byte) (string, map[string]interface{}, error) {
	context := parser.NewContext()
	doc := gmParser.Parser().Parse(text.NewReader(source), parser.WithContext(context))
	fm, err := meta.TryGet(context)
	if err != nil {
		return "", nil, fmt.Errorf("invalid front matter: %w", err)
	}
	var title string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
			title = string(h.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", nil, err
	}
	if len(fm) == 0 {
		return title, nil, nil
	}
	return title, normalize(fm).(map[string]interface{}), nil
}

// normalize converts the map[interface{}]interface{} values of decoded
// YAML into map[string]interface{} so they can be encoded as JSON
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = normalize(e)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, e := range t {
			s[i] = normalize(e)
		}
		return s
	}
	return v
}
