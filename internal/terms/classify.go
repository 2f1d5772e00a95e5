package terms

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/dictionary"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	hardSkills = dictionary.MustSet(dictionary.TableHardSkills)
	toolSkills = dictionary.MustSet(dictionary.TableTools)
	softSkills = dictionary.MustSet(dictionary.TableSoftSkills)
	roleTerms  = dictionary.MustSet(dictionary.TableRoles)

	hardPatternRe = regexp.MustCompile(`(framework|library|database|language|sdk|api)s?$`)
	toolPatternRe = regexp.MustCompile(`(platform|service|tool|cloud|pipeline|server)s?$`)
	softPatternRe = regexp.MustCompile(`(leadership|communication|management|collaboration|mentor)`)
	rolePatternRe = regexp.MustCompile(`(engineer|developer|manager|analyst|architect|designer|lead|director)s?$`)

	alphaWordRe = regexp.MustCompile(`^[a-z]+$`)
)

// Classify assigns exactly one category to a normalized term. Curated
// dictionary membership wins, then suffix/keyword heuristics, then a
// structural fallback. Deterministic for identical input. Membership is
// checked case-insensitively, so title-cased multi-word phrases match
// their dictionary entries however the data file cases them.
func Classify(normalized string) types.Category {
	if normalized == "" {
		return types.CategoryOther
	}
	lower := strings.ToLower(normalized)

	// Dictionary membership, in fixed priority order.
	switch {
	case hardSkills[lower]:
		return types.CategoryHard
	case toolSkills[lower]:
		return types.CategoryTool
	case softSkills[lower]:
		return types.CategorySoft
	case roleTerms[lower]:
		return types.CategoryRole
	}

	switch {
	case hardPatternRe.MatchString(lower):
		return types.CategoryHard
	case toolPatternRe.MatchString(lower):
		return types.CategoryTool
	case softPatternRe.MatchString(lower):
		return types.CategorySoft
	case rolePatternRe.MatchString(lower):
		return types.CategoryRole
	}

	// Structural fallback: a bare alphabetic word longer than three
	// characters is most likely an unlisted technology.
	if len(lower) > 3 && alphaWordRe.MatchString(lower) {
		return types.CategoryHard
	}
	return types.CategoryOther
}
