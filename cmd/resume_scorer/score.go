package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/terms"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	scoreResume   string
	scoreJob      string
	scoreJobURL   string
	scoreJSON     bool
	scoreParallel bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job requirement document",
	Long:  `Score evaluates a resume against a job posting and prints a 0-100 breakdown across keyword match, skill alignment, formatting, impact and readability.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResume, "resume", "", "Path to resume file (txt, md or html)")
	scoreCmd.Flags().StringVar(&scoreJob, "job", "", "Path to job requirement text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch the job posting from")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit the full breakdown as JSON")
	scoreCmd.Flags().BoolVar(&scoreParallel, "parallel", false, "Evaluate scoring rules concurrently")
	scoreCmd.MarkFlagsMutuallyExclusive("job", "job-url")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyDictionaryOverrides(cfg); err != nil {
		return err
	}

	resumePath := scoreResume
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
	requirementText, err := resolveRequirement(cmd.Context(), cfg, scoreJob, scoreJobURL)
	if err != nil {
		return err
	}

	engine := scoring.NewEngine(
		scoring.WithWeights(cfg.EffectiveWeights()),
		scoring.WithParallelRules(scoreParallel || cfg.Parallel),
	)
	meta := &types.DocumentMetadata{Format: resolveFormat(resumePath, cfg.ResumeFormat)}
	breakdown := engine.Score(resumeText, requirementText, meta)

	if scoreJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(breakdown)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		resumeTerms := terms.Extract(resumeText, terms.DefaultExtractOptions())
		requirementTerms := terms.Extract(requirementText, terms.DefaultExtractOptions())
		printer.PrintTerms("RESUME TERMS", resumeTerms.List)
		printer.PrintTerms("REQUIREMENT TERMS", requirementTerms.List)
	}
	printer.PrintBreakdown(&breakdown)
	fmt.Printf("\nOverall score: %.1f/100\n", breakdown.OverallScore)
	return nil
}
