package messages

import (
	"strings"
	"unicode"
)

var defaultProfanityWords = []string{
	"arse", "arsehole", "asshole", "bastard", "bitch", "bollocks", "bullshit",
	"cock", "crap", "cunt", "dick", "dickhead", "fuck", "fucker", "fucking",
	"motherfucker", "piss", "prick", "shit", "shitty", "slut", "twat", "wanker",
	"whore",
}

var leetReplacer = strings.NewReplacer(
	"0", "o", "1", "i", "3", "e", "4", "a", "5", "s", "7", "t",
	"@", "a", "$", "s", "!", "i", "|", "l", "+", "t",
)

// WordlistProfanityChecker matches whole words against a wordlist, case
// insensitively. In strict mode it also undoes common character
// substitutions ("sh1t"), repeated letters ("shiiit") and letters spread
// out with separators ("s h i t") before matching.
type WordlistProfanityChecker struct {
	words          map[string]struct{}
	collapsedWords map[string]struct{}
	strict         bool
}

// NewWordlistProfanityChecker uses words, or the built-in list when words
// is empty.
func NewWordlistProfanityChecker(words []string, strict bool) *WordlistProfanityChecker {
	if len(words) == 0 {
		words = defaultProfanityWords
	}
	checker := &WordlistProfanityChecker{
		words:          make(map[string]struct{}, len(words)),
		collapsedWords: make(map[string]struct{}, len(words)),
		strict:         strict,
	}
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		checker.words[word] = struct{}{}
		checker.collapsedWords[collapseRepeats(word)] = struct{}{}
	}
	return checker
}

func (c *WordlistProfanityChecker) IsProfane(text string) bool {
	lowered := strings.ToLower(text)
	for _, token := range tokenize(lowered) {
		if _, found := c.words[token]; found {
			return true
		}
	}
	if !c.strict {
		return false
	}

	normalized := leetReplacer.Replace(lowered)
	tokens := tokenize(normalized)
	for _, token := range tokens {
		if c.matchesNormalized(token) {
			return true
		}
	}

	// letters spread out as single character tokens
	var run strings.Builder
	for _, token := range append(tokens, "") {
		if len([]rune(token)) == 1 {
			run.WriteString(token)
			continue
		}
		if run.Len() > 1 && c.matchesNormalized(run.String()) {
			return true
		}
		run.Reset()
	}
	return false
}

func (c *WordlistProfanityChecker) matchesNormalized(token string) bool {
	if _, found := c.words[token]; found {
		return true
	}
	_, found := c.collapsedWords[collapseRepeats(token)]
	return found
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func collapseRepeats(word string) string {
	var builder strings.Builder
	var previous rune
	for i, r := range word {
		if i > 0 && r == previous {
			continue
		}
		builder.WriteRune(r)
		previous = r
	}
	return builder.String()
}
