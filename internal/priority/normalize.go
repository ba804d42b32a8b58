package priority

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases text, blanks out everything that is neither a word
// character nor whitespace, and splits the remainder into tokens.
func Normalize(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lower(text))
	return strings.Fields(cleaned)
}

// lower applies full Unicode lowercasing. A Caser is stateful, so one is built per call.
func lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// survivesNormalization reports whether a configured token can ever appear in a
// normalized description.
func survivesNormalization(token string) bool {
	tokens := Normalize(token)
	return len(tokens) == 1 && tokens[0] == token
}
