package feedback

import (
	"fmt"
	"regexp"

	"github.com/jonathan/resume-scorer/internal/dictionary"
	"github.com/jonathan/resume-scorer/internal/types"
)

var actionVerbs = dictionary.MustSet(dictionary.TableActionVerbs)

// quantifiedRe matches any numeric or percentage content.
var quantifiedRe = regexp.MustCompile(`\d|%`)

// maxUnquantifiedSuggestions bounds per-call output.
const maxUnquantifiedSuggestions = 5

// Unquantified flags bullet-like lines that open with an action verb but
// carry no numeric content. Lines not led by an action verb are left to
// the weak-verb detector.
type Unquantified struct{}

// Name implements Detector.
func (Unquantified) Name() string { return "unquantified" }

// Detect implements Detector.
func (Unquantified) Detect(candidateText, _ string, _ *types.DocumentMetadata) []types.Suggestion {
	var out []types.Suggestion
	for _, line := range bulletLines(candidateText) {
		if len(out) >= maxUnquantifiedSuggestions {
			break
		}
		if !actionVerbs[firstWord(line)] {
			continue
		}
		if quantifiedRe.MatchString(line) {
			continue
		}
		out = append(out, types.Suggestion{
			Category:         CategoryQuantification,
			Severity:         types.SeverityWarning,
			Title:            "Unquantified achievement",
			Message:          fmt.Sprintf("The line %q claims an achievement without any numbers.", truncateLine(line)),
			ActionableAdvice: "Quantify the result: how much, how many, how fast, or for how many people.",
			Metadata:         map[string]any{"line": line},
		})
	}
	return out
}
