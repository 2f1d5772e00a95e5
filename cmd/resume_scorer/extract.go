package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/extraction"
)

var (
	extractURL     string
	extractJSON    bool
	extractBrowser bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Fetch and extract a job posting from a URL",
	Long:  `Extract fetches a job posting page, strips application forms and page chrome, and prints the requirement text.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractURL, "url", "", "Job posting URL")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Emit the posting as JSON")
	extractCmd.Flags().BoolVar(&extractBrowser, "browser", false, "Render the page in a headless browser if needed")
	_ = extractCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := extraction.DefaultFetchOptions()
	opts.RenderJS = extractBrowser || cfg.UseBrowser

	posting, err := extraction.FromURL(cmd.Context(), extractURL, opts)
	if err != nil {
		return err
	}

	if extractJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(posting)
	}

	if posting.Title != "" {
		fmt.Printf("Title:    %s\n", posting.Title)
	}
	if posting.Company != "" {
		fmt.Printf("Company:  %s\n", posting.Company)
	}
	if posting.Location != "" {
		fmt.Printf("Location: %s\n", posting.Location)
	}
	fmt.Printf("Source:   %s\n\n", posting.Source)
	fmt.Println(posting.Description)
	return nil
}
