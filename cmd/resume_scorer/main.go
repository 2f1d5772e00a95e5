// Package main provides the entry point for the resume scorer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dictDir    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_scorer",
	Short: "Resume scoring and feedback engine",
	Long:  "Resume Scorer rates a resume against a job requirement document, producing a 0-100 breakdown across weighted categories plus actionable improvement suggestions.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&dictDir, "dict-dir", "", "Directory with dictionary override JSON files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
