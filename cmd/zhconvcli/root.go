// Package main is a thin CLI front-end over the zhconv facade. It parses
// flags and writes strings; every conversion decision is made by package
// zhconv.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhconv/zhconv"
)

var (
	rootCmd = &cobra.Command{
		Use:          "zhconv",
		Short:        "zhconv",
		SilenceUsage: true,
		Long:         `Convert text between Simplified/Traditional Chinese and regional variants.`,
	}

	configFlag      string
	punctuationFlag bool
	verboseFlag     bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable the diagnostic channel")
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(zhoCheckCmd())
	rootCmd.AddCommand(configsCmd())
}

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [text]",
		Short: "convert text using a named configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zhconv.SetVerboseLogging(verboseFlag)
			text, err := readArgOrStdin(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), zhconv.Convert(text, configFlag, punctuationFlag))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFlag, "config", "c", "s2t", "configuration name, e.g. s2t, tw2sp")
	cmd.Flags().BoolVarP(&punctuationFlag, "punctuation", "p", false, "also convert punctuation")
	return cmd
}

func zhoCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zhocheck [text]",
		Short: "classify text as traditional (1), simplified (2), or other (0)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readArgOrStdin(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), zhconv.ZhoCheck(text))
			return nil
		},
	}
}

func configsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configs",
		Short: "list supported configuration names",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range zhconv.GetSupportedConfigs() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func readArgOrStdin(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
