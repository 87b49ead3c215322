package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/myrjola/smartcop/cmd/cli/pipeline"
	"github.com/myrjola/smartcop/cmd/cli/registry"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
)

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.PersistentFlags().String("fields", "", "YAML file with field overrides")
	rootCmd.AddGroup(registry.Group)
	rootCmd.AddCommand(registry.Fields, registry.Languages)
	rootCmd.AddGroup(pipeline.Group)
	rootCmd.AddCommand(pipeline.Extract, pipeline.Translate, pipeline.Speak)
}

var rootCmd = &cobra.Command{
	Use:           "smartcop-cli",
	Long:          `Command line utilities for trying out the SmartCop FIR drafting pipeline`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
