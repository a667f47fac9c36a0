// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package rewrite_test

import (
	"github.com/gardener/mdscan/pkg/rewrite"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Rules", func() {
	var (
		rules *rewrite.Rules
		doc   string
		got   string
		stats rewrite.Stats
	)
	BeforeEach(func() {
		rules = &rewrite.Rules{}
	})
	JustBeforeEach(func() {
		got, stats = rules.Apply(doc)
	})

	When("no rule is set", func() {
		BeforeEach(func() {
			doc = "# T\n\n[a](b.md)\n\n```go\nx\n```\n\na|b\n---|---\n"
		})
		It("returns the document unchanged", func() {
			Expect(rules.IsEmpty()).To(BeTrue())
			Expect(got).To(Equal(doc))
			Expect(stats.Total()).To(Equal(0))
		})
	})

	When("link substitutions are set", func() {
		BeforeEach(func() {
			rules.Links = []rewrite.Substitution{
				{From: "https://old.example.com/", To: "https://new.example.com/"},
				{From: "https://old.example.com/docs/", To: "/docs/"},
				{From: "./", To: "../"},
			}
			doc = "[a](https://old.example.com/docs/x.md) [b](./b.md) ![c](./c.png) [d][ref]\n" +
				"[ref]: ./ref.md\n" +
				"```\n[e](./e.md)\n```\n"
		})
		It("replaces the prefix of the first matching substitution", func() {
			Expect(got).To(Equal("[a](https://new.example.com/docs/x.md) [b](../b.md) ![c](./c.png) [d][ref]\n" +
				"[ref]: ./ref.md\n" +
				"```\n[e](./e.md)\n```\n"))
			Expect(stats.Links).To(Equal(2))
			Expect(stats.LinkReferences).To(Equal(0))
		})
	})

	When("link reference substitutions are set", func() {
		BeforeEach(func() {
			rules.LinkReferences = []rewrite.Substitution{{From: "./", To: "/site/"}}
			doc = "[a](./a.md)\n\n  [r1]: <./one.md> \"One\"\n[r2]: ./two.md\n[r3]: http://x\n"
		})
		It("replaces the url only", func() {
			Expect(got).To(Equal("[a](./a.md)\n\n  [r1]: </site/one.md> \"One\"\n[r2]: /site/two.md\n[r3]: http://x\n"))
			Expect(stats.LinkReferences).To(Equal(2))
			Expect(stats.Links).To(Equal(0))
		})
	})

	When("language renames are set", func() {
		BeforeEach(func() {
			rules.Languages = map[string]string{"golang": "go", "": "text"}
			doc = "```golang\nx := 1\n```\n\n```\nplain\n```\n\n    indented\n\n```sh\nls\n```\n"
		})
		It("renames fenced code block languages on the opening line", func() {
			Expect(got).To(Equal("```go\nx := 1\n```\n\n```text\nplain\n```\n\n    indented\n\n```sh\nls\n```\n"))
			Expect(stats.Languages).To(Equal(2))
		})
	})

	When("table formatting is set", func() {
		BeforeEach(func() {
			rules.FormatTables = true
			doc = "Intro\n\na|b\n---|---\n1|22\n\n```\nc|d\n---|---\n```\n"
		})
		It("pads table columns outside code blocks", func() {
			Expect(got).To(Equal("Intro\n\n| a   | b   |\n| --- | --- |\n| 1   | 22  |\n\n```\nc|d\n---|---\n```\n"))
			Expect(stats.Tables).To(Equal(1))
		})
		It("is idempotent", func() {
			again, s := rules.Apply(got)
			Expect(again).To(Equal(got))
			Expect(s.Tables).To(Equal(0))
		})
		Context("and a separator line follows a code block", func() {
			BeforeEach(func() {
				doc = "    code\n|---|---|\n| 1 | 2 |\n"
			})
			It("keeps the code block and leaves the lines alone", func() {
				Expect(got).To(Equal(doc))
				Expect(stats.Tables).To(Equal(0))
			})
		})
	})

	When("the document has front matter", func() {
		BeforeEach(func() {
			rules.Links = []rewrite.Substitution{{From: "./", To: "/"}}
			rules.FormatTables = true
			doc = "---\nlinks: [x](./x.md)\nrow: a|b\n---\n[y](./y.md)\n"
		})
		It("leaves the front matter untouched", func() {
			Expect(got).To(Equal("---\nlinks: [x](./x.md)\nrow: a|b\n---\n[y](/y.md)\n"))
			Expect(stats.Links).To(Equal(1))
		})
	})

	When("the front matter is not closed", func() {
		BeforeEach(func() {
			rules.Links = []rewrite.Substitution{{From: "./", To: "/"}}
			doc = "---\n[y](./y.md)\n"
		})
		It("treats the whole document as content", func() {
			Expect(got).To(Equal("---\n[y](/y.md)\n"))
		})
	})
})

var _ = Describe("Validate", func() {
	It("accepts non-empty prefixes", func() {
		r := &rewrite.Rules{Links: []rewrite.Substitution{{From: "a", To: ""}}}
		Expect(r.Validate()).To(Succeed())
	})
	It("reports every empty prefix", func() {
		r := &rewrite.Rules{
			Links:          []rewrite.Substitution{{From: "", To: "x"}},
			LinkReferences: []rewrite.Substitution{{From: "a"}, {From: ""}},
		}
		err := r.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("links[0]"))
		Expect(err.Error()).To(ContainSubstring("linkReferences[1]"))
	})
})

var _ = Describe("Stats", func() {
	It("adds up", func() {
		s := rewrite.Stats{Links: 1, Tables: 2}
		s.Add(rewrite.Stats{Links: 1, LinkReferences: 3, Languages: 4})
		Expect(s).To(Equal(rewrite.Stats{Links: 2, LinkReferences: 3, Languages: 4, Tables: 2}))
		Expect(s.Total()).To(Equal(11))
		Expect(s.String()).To(Equal("2 links, 3 link references, 4 code blocks, 2 tables"))
	})
})
