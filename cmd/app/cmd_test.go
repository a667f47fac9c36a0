// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gardener/mdscan/cmd/app"
	"github.com/gardener/mdscan/cmd/configuration"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"
)

const guide = "# Guide\n\nSee [setup](./setup.md).\n\n```golang\n[a](./a.md)\n```\n\n[ref]: ./ref.md\n\na|b\n---|---\n1|2\n"

var _ = Describe("mdscan", func() {
	var (
		dir  string
		out  *bytes.Buffer
		args []string
		err  error
	)
	BeforeEach(func() {
		dir, err = os.MkdirTemp("", "mdscan")
		Expect(err).NotTo(HaveOccurred())
		Expect(os.MkdirAll(filepath.Join(dir, "src", "sub"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "src", "guide.md"), []byte(guide), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "src", "sub", "other.md"), []byte("[x](./x.md)\n"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "src", "notes.txt"), []byte("[y](./y.md)\n"), 0644)).To(Succeed())
		// keep the user configuration out of the tests
		Expect(os.Setenv(configuration.MdscanConfigEnv, filepath.Join(dir, "config.yaml"))).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{}\n"), 0644)).To(Succeed())
		out = &bytes.Buffer{}
	})
	JustBeforeEach(func() {
		cmd := app.NewCommand(context.Background())
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err = cmd.Execute()
	})
	AfterEach(func() {
		Expect(os.Unsetenv(configuration.MdscanConfigEnv)).To(Succeed())
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	Describe("links", func() {
		BeforeEach(func() {
			args = []string{"links", filepath.Join(dir, "src", "guide.md"), "-o", "json"}
		})
		It("lists the links outside code blocks", func() {
			Expect(err).NotTo(HaveOccurred())
			var docs []map[string]interface{}
			Expect(json.Unmarshal(out.Bytes(), &docs)).To(Succeed())
			Expect(docs).To(HaveLen(1))
			Expect(docs[0]["title"]).To(Equal("Guide"))
			Expect(docs[0]["links"]).To(ConsistOf(HaveKeyWithValue("url", "./setup.md")))
			Expect(docs[0]).NotTo(HaveKey("tables"))
		})
	})

	Describe("inventory", func() {
		BeforeEach(func() {
			args = []string{"inventory", filepath.Join(dir, "src")}
		})
		It("lists all constructs of the markdown files of a directory", func() {
			Expect(err).NotTo(HaveOccurred())
			var docs []map[string]interface{}
			Expect(yaml.Unmarshal(out.Bytes(), &docs)).To(Succeed())
			Expect(docs).To(HaveLen(2))
			Expect(docs[0]["codeBlocks"]).To(HaveLen(1))
			Expect(docs[0]["linkReferences"]).To(HaveLen(1))
			Expect(docs[0]["tables"]).To(HaveLen(1))
			Expect(docs[1]["path"]).To(Equal(filepath.Join(dir, "src", "sub", "other.md")))
		})
	})

	Describe("report with an invalid format", func() {
		BeforeEach(func() {
			args = []string{"tables", filepath.Join(dir, "src", "guide.md"), "-o", "xml"}
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("xml"))
		})
	})

	Describe("report with missing files", func() {
		BeforeEach(func() {
			args = []string{"codeblocks", filepath.Join(dir, "missing1.md"), filepath.Join(dir, "missing2.md")}
		})
		It("reports all of them", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("missing1.md"))
			Expect(err.Error()).To(ContainSubstring("missing2.md"))
		})
	})

	Describe("rewrite", func() {
		var dest string
		BeforeEach(func() {
			dest = filepath.Join(dir, "dest")
			args = []string{"rewrite", filepath.Join(dir, "src"),
				"-d", dest,
				"--link", "./=/docs/",
				"--link-reference", "./=https://example.com/",
				"--language", "golang=go",
				"--format-tables",
				"--workers", "2",
			}
		})
		It("writes the rewritten documents keeping the directory structure", func() {
			Expect(err).NotTo(HaveOccurred())
			b, err := os.ReadFile(filepath.Join(dest, "guide.md"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(Equal("# Guide\n\nSee [setup](/docs/setup.md).\n\n```go\n[a](./a.md)\n```\n\n" +
				"[ref]: https://example.com/ref.md\n\n| a   | b   |\n| --- | --- |\n| 1   | 2   |\n"))
			b, err = os.ReadFile(filepath.Join(dest, "sub", "other.md"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(Equal("[x](/docs/x.md)\n"))
			_, err = os.Stat(filepath.Join(dest, "notes.txt"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
		Context("with a configuration file", func() {
			BeforeEach(func() {
				config := filepath.Join(dir, "rules.yaml")
				Expect(os.WriteFile(config, []byte("links:\n  - from: ./\n    to: ../\nformatTables: false\n"), 0644)).To(Succeed())
				args = []string{"rewrite", filepath.Join(dir, "src", "sub", "other.md"), "-d", dest, "--config", config}
			})
			It("applies the configured rules", func() {
				Expect(err).NotTo(HaveOccurred())
				b, err := os.ReadFile(filepath.Join(dest, "other.md"))
				Expect(err).NotTo(HaveOccurred())
				Expect(string(b)).To(Equal("[x](../x.md)\n"))
			})
		})
		Context("in place", func() {
			BeforeEach(func() {
				args = []string{"rewrite", filepath.Join(dir, "src"), "--in-place", "--link", "./x=./z"}
			})
			It("writes the changed documents back", func() {
				Expect(err).NotTo(HaveOccurred())
				b, err := os.ReadFile(filepath.Join(dir, "src", "sub", "other.md"))
				Expect(err).NotTo(HaveOccurred())
				Expect(string(b)).To(Equal("[x](./z.md)\n"))
				b, err = os.ReadFile(filepath.Join(dir, "src", "guide.md"))
				Expect(err).NotTo(HaveOccurred())
				Expect(string(b)).To(Equal(guide))
			})
		})
		Context("dry run", func() {
			BeforeEach(func() {
				args = []string{"rewrite", filepath.Join(dir, "src"), "--dry-run", "-d", "out", "--link", "./=/"}
			})
			It("lists the documents and their changes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(ContainSubstring("out\n  guide.md\n    changes: 1 links, 0 link references, 0 code blocks, 0 tables\n"))
				Expect(out.String()).To(ContainSubstring("  sub\n    other.md\n"))
				_, err := os.Stat("out")
				Expect(os.IsNotExist(err)).To(BeTrue())
			})
		})
		Context("without destination", func() {
			BeforeEach(func() {
				args = []string{"rewrite", filepath.Join(dir, "src")}
			})
			It("errors", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("--destination"))
			})
		})
		Context("with an invalid substitution", func() {
			BeforeEach(func() {
				args = []string{"rewrite", filepath.Join(dir, "src"), "-d", dest, "--link", "nope"}
			})
			It("errors", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("FROM=TO"))
			})
		})
	})

	Describe("version", func() {
		BeforeEach(func() {
			args = []string{"version"}
		})
		It("prints the version", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("binary was not built properly\n"))
		})
	})

	Describe("completion", func() {
		BeforeEach(func() {
			args = []string{"completion", "bash"}
		})
		It("prints the completion script", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("mdscan"))
		})
	})
})
