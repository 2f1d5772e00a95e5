// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted CLI output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBreakdown outputs a human-readable score breakdown.
func (p *Printer) PrintBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:  %.1f / 100\n", breakdown.OverallScore))
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", breakdown.Explanation))
	sb.WriteString("\n")

	// WeightPercent is already a percent (35 for a 0.35 weight).
	for _, name := range orderedCategories(breakdown) {
		cat := breakdown.Categories[name]
		sb.WriteString(fmt.Sprintf("%-16s %5.1f%%  x%3.0f%%  = %5.1f pts\n",
			label(name), cat.RawScore*100, cat.WeightPercent, cat.WeightedPoints))
	}

	if len(breakdown.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(breakdown.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", breakdown.Recommendations[i]))
		}
		if len(breakdown.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(breakdown.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedback outputs improvement suggestions grouped by severity.
func (p *Printer) PrintFeedback(result *types.FeedbackResult) {
	if result == nil || len(result.Suggestions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total suggestions: %d\n", len(result.Suggestions)))

	for _, severity := range []types.Severity{types.SeverityCritical, types.SeverityWarning, types.SeverityImprovement} {
		suggestions := result.BySeverity[severity]
		if len(suggestions) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s (%d):\n", strings.ToUpper(string(severity)), len(suggestions)))
		count := min(len(suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := suggestions[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", s.Title))
			sb.WriteString(fmt.Sprintf("    %s\n", s.ActionableAdvice))
		}
		if len(suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(suggestions)-maxItemsToShow))
		}
	}

	p.printBox("IMPROVEMENT SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTerms outputs the extracted terms of a document grouped by
// category.
func (p *Printer) PrintTerms(title string, terms types.TermList) {
	if len(terms.Terms) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total terms: %d\n", len(terms.Terms)))

	for _, cat := range types.Categories() {
		inCat := terms.ByCategory(cat)
		if len(inCat) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s (%d):\n", label(string(cat)), len(inCat)))
		count := min(len(inCat), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (x%d)\n", inCat[i].Text, inCat[i].Frequency))
		}
		if len(inCat) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(inCat)-maxItemsToShow))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// orderedCategories returns category names in stable display order.
func orderedCategories(breakdown *types.ScoreBreakdown) []string {
	preferred := []string{"keyword_match", "skill_alignment", "formatting", "impact", "readability"}
	var out []string
	for _, name := range preferred {
		if _, ok := breakdown.Categories[name]; ok {
			out = append(out, name)
		}
	}
	for name := range breakdown.Categories {
		if !contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// label turns a snake_case identifier into a display label.
func label(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
