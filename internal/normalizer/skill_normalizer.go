package normalizer

import (
	"regexp"
	"strings"
)

// reNonWord matches runs of characters outside [0-9A-Za-z_]. Whitespace is
// included, so replacing a run with one space also collapses whitespace.
var reNonWord = regexp.MustCompile(`\W+`)

// Normalize lowercases a raw skill, turns every run of non-word characters
// into a single space and trims the result. Empty input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(text)
	s = reNonWord.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// FuzzyMatch normalizes both skills and reports whether either contains the other
func FuzzyMatch(userSkill, knownSkill string) bool {
	if userSkill == "" || knownSkill == "" {
		return false
	}
	u := Normalize(userSkill)
	k := Normalize(knownSkill)
	return strings.Contains(u, k) || strings.Contains(k, u)
}
