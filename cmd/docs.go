package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// docsCmd writes a Markdown page for each command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for each command",
	Args:   cobra.ExactArgs(1),
	RunE:   docsRun,
	Hidden: true,
}

func docsRun(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to make docs dir %s: %w", dir, err)
	}

	if err := doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs: %w", err)
	}
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	base := pageName(filename)
	if base == rootCmd.Name() {
		return fmt.Sprintf(rootPage, base, 0)
	}

	order := 0
	for _, c := range rootCmd.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		if rootCmd.Name()+"_"+c.Name() == base {
			return fmt.Sprintf(childPage, c.Name(), rootCmd.Name(), order)
		}
		order++
	}
	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := pageName(filename)
	if base == rootCmd.Name() {
		return "/"
	}
	return base
}

// pageName is the file name of a page without its extension, eg genoma_codons
func pageName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
