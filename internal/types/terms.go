// Package types defines the shared data model for the scoring engine.
package types

// Category classifies a normalized term.
type Category string

const (
	// CategoryHard covers programming languages, frameworks and databases.
	CategoryHard Category = "hard"
	// CategorySoft covers interpersonal and organizational skills.
	CategorySoft Category = "soft"
	// CategoryTool covers cloud, DevOps, testing and monitoring tooling.
	CategoryTool Category = "tool"
	// CategoryRole covers job-title phrases.
	CategoryRole Category = "role"
	// CategoryOther is the fallback for unclassifiable terms.
	CategoryOther Category = "other"
)

// Categories lists every valid category in a stable order.
func Categories() []Category {
	return []Category{CategoryHard, CategorySoft, CategoryTool, CategoryRole, CategoryOther}
}

// Term is a normalized word or short phrase extracted from a document.
// Terms are created fresh per extraction and never mutated afterwards.
type Term struct {
	Text      string   `json:"text"`
	Frequency int      `json:"frequency"`
	Category  Category `json:"category"`
}

// TermList holds the terms extracted from one document, ordered by
// frequency descending. The normalized text is the uniqueness key.
type TermList struct {
	Terms []Term `json:"terms"`
}

// Contains reports whether the list holds a term with the given
// normalized text.
func (tl *TermList) Contains(normalized string) bool {
	for _, t := range tl.Terms {
		if t.Text == normalized {
			return true
		}
	}
	return false
}

// ByCategory returns the subset of terms in the given category,
// preserving frequency order.
func (tl *TermList) ByCategory(cat Category) []Term {
	var out []Term
	for _, t := range tl.Terms {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// Texts returns the normalized texts in list order.
func (tl *TermList) Texts() []string {
	out := make([]string, len(tl.Terms))
	for i, t := range tl.Terms {
		out[i] = t.Text
	}
	return out
}

// TermProximity holds auxiliary co-occurrence diagnostics for a term pair.
type TermProximity struct {
	TermA         string `json:"term_a"`
	TermB         string `json:"term_b"`
	MinDistance   int    `json:"min_distance"`
	CoOccurrences int    `json:"co_occurrences"`
}
