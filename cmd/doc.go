// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"
)

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Documentation generator",
	Long:  `Generators for documentation and shell completion.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return os.MkdirAll(viper.GetString("output"), 0755)
	},
}

// manCmd represents the man command
var manCmd = &cobra.Command{
	Use:   "man",
	Short: "Generate man pages",
	Long:  `Generates a set of man pages for gopm`,
	RunE: func(cmd *cobra.Command, args []string) error {
		header := &doc.GenManHeader{
			Title:   "GOPM",
			Section: "1",
		}
		return doc.GenManTree(RootCmd, header, viper.GetString("output"))
	},
}

// markdownCmd represents the markdown command
var markdownCmd = &cobra.Command{
	Use:   "markdown",
	Short: "Generate Markdown documentation",
	Long:  `Generates documentation for gopm in Markdown format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doc.GenMarkdownTree(RootCmd, viper.GetString("output"))
	},
}

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish]",
	Aliases:   []string{"bash"},
	Short:     "Generate a shell autocompletion file",
	Long:      `Generates an autocompletion file for Bash, Zsh or Fish.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := "bash"
		if len(args) > 0 {
			shell = args[0]
		}
		name := filepath.Join(viper.GetString("output"), "gopm_completions."+shell)
		switch shell {
		case "bash":
			return RootCmd.GenBashCompletionFile(name)
		case "zsh":
			return RootCmd.GenZshCompletionFile(name)
		case "fish":
			return RootCmd.GenFishCompletionFile(name, true)
		}
		return fmt.Errorf("unsupported shell %q", shell)
	},
}

func init() {
	RootCmd.AddCommand(docCmd)
	docCmd.AddCommand(manCmd, markdownCmd, completionCmd)

	docCmd.PersistentFlags().String("output", "./", "Output directory")
	viper.BindPFlags(docCmd.PersistentFlags())
}
