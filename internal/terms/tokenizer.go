// Package terms provides tokenization, normalization, classification and
// extraction of skill terms from free-form document text.
package terms

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-scorer/internal/dictionary"
)

// minTokenLength is the shortest token kept by the tokenizer.
const minTokenLength = 3

// TokenizerOptions configures tokenization behavior.
type TokenizerOptions struct {
	// RemoveStopwords drops general English stopwords and resume-filler
	// noise words from the token stream.
	RemoveStopwords bool
	// NGrams additionally emits contiguous 2-word and 3-word windows over
	// the filtered stream so multi-word skills survive filtering.
	NGrams bool
}

var (
	stopwords  = dictionary.MustSet(dictionary.TableStopwords)
	noiseWords = dictionary.MustSet(dictionary.TableNoiseWords)
)

// Tokenize splits raw text into lowercase word tokens. Internal punctuation
// meaningful to technical terms (dot, hyphen, plus, hash) is preserved;
// leading and trailing punctuation is stripped. Tokens shorter than three
// characters are dropped unless they are known synonym aliases like "js"
// or "ml", which must reach Normalize to be canonicalized.
func Tokenize(text string, opts TokenizerOptions) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		// Trailing dots and hyphens are sentence artifacts; trailing "+"
		// and "#" are kept so "c++" and "f#" survive intact.
		tok := strings.TrimRight(word.String(), ".-")
		tok = strings.TrimLeft(tok, ".-+#")
		word.Reset()
		if tok == "" {
			return
		}
		if len([]rune(tok)) < minTokenLength {
			if _, known := synonyms[tok]; !known {
				return
			}
		}
		if opts.RemoveStopwords && (stopwords[tok] || noiseWords[tok]) {
			return
		}
		tokens = append(tokens, tok)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' || r == '#' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	if opts.NGrams {
		bigrams := ngrams(tokens, 2)
		trigrams := ngrams(tokens, 3)
		tokens = append(tokens, bigrams...)
		tokens = append(tokens, trigrams...)
	}
	return tokens
}

// ngrams emits contiguous n-word windows over the token stream.
func ngrams(tokens []string, n int) []string {
	var out []string
	for i := 0; i+n <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+n], " "))
	}
	return out
}

// IsStopword reports whether a lowercase token is a general English
// stopword or a resume-filler noise word.
func IsStopword(token string) bool {
	return stopwords[token] || noiseWords[token]
}
