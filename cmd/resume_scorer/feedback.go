package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/feedback"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	feedbackResume string
	feedbackJob    string
	feedbackJobURL string
	feedbackJSON   bool
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Generate improvement suggestions for a resume",
	Long:  `Feedback analyzes a resume against a job posting and prints prioritized, actionable improvement suggestions.`,
	RunE:  runFeedback,
}

func init() {
	feedbackCmd.Flags().StringVar(&feedbackResume, "resume", "", "Path to resume file (txt, md or html)")
	feedbackCmd.Flags().StringVar(&feedbackJob, "job", "", "Path to job requirement text file")
	feedbackCmd.Flags().StringVar(&feedbackJobURL, "job-url", "", "URL to fetch the job posting from")
	feedbackCmd.Flags().BoolVar(&feedbackJSON, "json", false, "Emit the suggestions as JSON")
	feedbackCmd.MarkFlagsMutuallyExclusive("job", "job-url")
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyDictionaryOverrides(cfg); err != nil {
		return err
	}

	resumePath := feedbackResume
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	if resumePath == "" {
		return fmt.Errorf("a resume is required: pass --resume or set it in the config file")
	}
	resumeText, err := loadDocument(resumePath, cfg.ResumeFormat)
	if err != nil {
		return err
	}
	requirementText, err := resolveRequirement(cmd.Context(), cfg, feedbackJob, feedbackJobURL)
	if err != nil {
		return err
	}

	engine := feedback.NewEngine()
	meta := &types.DocumentMetadata{Format: resolveFormat(resumePath, cfg.ResumeFormat)}
	result := engine.Feedback(resumeText, requirementText, meta)

	if feedbackJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintFeedback(&result)
	return nil
}
