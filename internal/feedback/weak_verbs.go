package feedback

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/dictionary"
	"github.com/jonathan/resume-scorer/internal/types"
)

var weakVerbAlternatives = dictionary.MustMultiTable(dictionary.TableWeakVerbs)

// maxWeakVerbSuggestions bounds per-call output.
const maxWeakVerbSuggestions = 6

// WeakVerbs flags bullet-like lines that open with weak or generic verbs
// and proposes stronger alternatives from the curated mapping.
type WeakVerbs struct{}

// Name implements Detector.
func (WeakVerbs) Name() string { return "weak_verbs" }

// Detect implements Detector.
func (WeakVerbs) Detect(candidateText, _ string, _ *types.DocumentMetadata) []types.Suggestion {
	var out []types.Suggestion
	for _, line := range bulletLines(candidateText) {
		if len(out) >= maxWeakVerbSuggestions {
			break
		}
		first := firstWord(line)
		alternatives, isWeak := weakVerbAlternatives[first]
		if !isWeak {
			continue
		}
		out = append(out, types.Suggestion{
			Category:         CategoryLanguage,
			Severity:         types.SeverityImprovement,
			Title:            fmt.Sprintf("Weak opening verb: %s", first),
			Message:          fmt.Sprintf("The line %q opens with the generic verb %q.", truncateLine(line), first),
			ActionableAdvice: fmt.Sprintf("Open with a stronger verb such as %s.", strings.Join(alternatives, ", ")),
			Metadata: map[string]any{
				"verb":         first,
				"alternatives": alternatives,
				"line":         line,
			},
		})
	}
	return out
}

// firstWord returns the lowercase first word of a line, stripped of
// trailing punctuation.
func firstWord(line string) string {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[0], ".,;:!?")
}

// truncateLine shortens a line for display in a suggestion message.
func truncateLine(line string) string {
	const max = 60
	r := []rune(line)
	if len(r) <= max {
		return line
	}
	return string(r[:max-3]) + "..."
}
