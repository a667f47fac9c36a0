// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configureReportFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("output", "o", "yaml",
		"Output format. One of: yaml, json.")
	_ = vip.BindPFlag("output", command.Flags().Lookup("output"))
}

func configureRewriteFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("destination", "d", "",
		"Destination path. Files are written under it, directories keep their structure.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().Bool("in-place", false,
		"Write the changed documents back to their source path.")
	_ = vip.BindPFlag("in-place", command.Flags().Lookup("in-place"))

	command.Flags().Bool("dry-run", false,
		"Instead of writing files, output the projected file/folder hierarchy and the changes for each file to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().Int("workers", 10,
		"Number of parallel workers for document processing.")
	_ = vip.BindPFlag("workers", command.Flags().Lookup("workers"))

	command.Flags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
	_ = vip.BindPFlag("fail-fast", command.Flags().Lookup("fail-fast"))

	command.Flags().StringP("config", "c", "",
		"Rewrite configuration file. Defaults to $MDSCANCONFIG or $HOME/.mdscan/config.")
	_ = vip.BindPFlag("config", command.Flags().Lookup("config"))

	command.Flags().StringSlice("link", []string{},
		"Link URL prefix substitution in the form FROM=TO. Repeatable, the first matching substitution wins.")
	_ = vip.BindPFlag("link", command.Flags().Lookup("link"))

	command.Flags().StringSlice("link-reference", []string{},
		"Link reference definition URL prefix substitution in the form FROM=TO. Repeatable, the first matching substitution wins.")
	_ = vip.BindPFlag("link-reference", command.Flags().Lookup("link-reference"))

	command.Flags().StringToString("language", map[string]string{},
		"Fenced code block language renames in the form FROM=TO.")
	_ = vip.BindPFlag("language", command.Flags().Lookup("language"))

	command.Flags().Bool("format-tables", false,
		"Pad table columns and regenerate table separator lines.")
	_ = vip.BindPFlag("format-tables", command.Flags().Lookup("format-tables"))
}
