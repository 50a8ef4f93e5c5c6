package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	quiet bool
)

var rootCmd = &cobra.Command{
	Use:   "memfit",
	Short: "Exercise and inspect the memfit free-list allocator",
	Long: `memfit drives workloads against the memfit arena allocator and reports
free-list state, fragmentation and allocation statistics. It is a harness
around the library; all allocation behavior lives in the arena package.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
