// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"sync"

	"github.com/gardener/mdscan/cmd/configuration"
	"github.com/gardener/mdscan/cmd/gendocs"
	"github.com/gardener/mdscan/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

var klogFlags sync.Once

// NewCommand creates a new root command and propagates
// the context to the Run callback closures of its subcommands
func NewCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdscan",
		Short: "Scan and rewrite markdown documents",
		Long: `mdscan lists the code blocks, links, link reference definitions and tables
of markdown documents, and rewrites them without touching code blocks.`,
	}

	cmd.AddCommand(newReportCmd(report.KindCodeBlocks, "List the fenced and indented code blocks of markdown documents"))
	cmd.AddCommand(newReportCmd(report.KindLinks, "List the inline and reference links of markdown documents, images excluded"))
	cmd.AddCommand(newReportCmd(report.KindLinkReferences, "List the link reference definitions of markdown documents"))
	cmd.AddCommand(newReportCmd(report.KindTables, "List the pipe tables of markdown documents"))
	cmd.AddCommand(newReportCmd(report.KindAll, "List all code blocks, links, link reference definitions and tables of markdown documents"))
	cmd.AddCommand(newRewriteCmd(ctx, new(configuration.DefaultConfigurationLoader)))
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	klogFlags.Do(func() {
		klog.InitFlags(nil)
	})
	AddFlags(cmd)

	return cmd
}

func newReportCmd(kind report.Kind, short string) *cobra.Command {
	vip := viper.New()
	command := &cobra.Command{
		Use:   string(kind) + " FILE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return execReport(vip, kind, args, cmd.OutOrStdout())
		},
	}
	configureReportFlags(command, vip)
	return command
}

func newRewriteCmd(ctx context.Context, loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	command := &cobra.Command{
		Use:   "rewrite FILE...",
		Short: "Rewrite link urls, code block languages and tables of markdown documents",
		Long: `Rewrite applies URL prefix substitutions to links and link reference definitions,
renames fenced code block languages and formats tables. Code blocks are never
changed except for the language of their opening fence. Directories are
searched for markdown files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return execRewrite(ctx, vip, loader, args, cmd.OutOrStdout())
		},
	}
	configureRewriteFlags(command, vip)
	return command
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
