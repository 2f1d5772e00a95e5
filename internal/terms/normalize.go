package terms

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/dictionary"
)

var (
	synonyms = dictionary.MustTable(dictionary.TableSynonyms)

	// trailingVersionRe matches version suffixes like "python 3.11",
	// "java8" or "angular 2".
	trailingVersionRe = regexp.MustCompile(`[\s-]*v?\d+(\.\d+)*$`)

	// jsSuffixRe matches web-framework file-extension style suffixes.
	jsSuffixRe = regexp.MustCompile(`\.(js|ts)$`)
)

// preservedCompounds are dotted names that are canonical as written and
// must not have their suffix stripped.
var preservedCompounds = map[string]bool{
	"node.js":  true,
	"next.js":  true,
	"nuxt.js":  true,
	"nest.js":  true,
	"three.js": true,
	"vb.net":   true,
	"asp.net":  true,
}

// Normalize maps a raw token or phrase to its canonical form. It is pure
// and total: every input yields exactly one output and never an error, and
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	// Exact synonym lookup wins over every pattern rule.
	if canonical, ok := synonyms[s]; ok {
		return canonical
	}

	// Strip trailing version numbers ("python 3.11" -> "python"), then
	// retry the synonym table with the stripped form. Short results are
	// rejected so "s3" and "ec2" keep their digits.
	stripped := trailingVersionRe.ReplaceAllString(s, "")
	if len(stripped) >= minTokenLength && stripped != s {
		s = stripped
		if canonical, ok := synonyms[s]; ok {
			return canonical
		}
	}

	// Collapse ".js"/".ts" suffixes unless the compound is canonical as
	// written ("angular.js" -> "angular", but "node.js" stays).
	if !preservedCompounds[s] {
		base := jsSuffixRe.ReplaceAllString(s, "")
		if base != "" && base != s {
			s = base
			if canonical, ok := synonyms[s]; ok {
				return canonical
			}
		}
	}

	// Default casing: multi-word phrases to title case, single words stay
	// lowercase.
	if strings.Contains(s, " ") {
		return titleCase(s)
	}
	return s
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}
