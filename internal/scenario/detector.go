package scenario

import (
	"regexp"
	"strings"
)

// idWord matches "id" only as a standalone word, so "rapid" or
// "holiday" do not trigger the tempered-id scenario.
var idWord = regexp.MustCompile(`\bid\b`)

// keywordRules is the ordered priority list for detection. Domain terms
// are checked before raw keys; first match wins, so text containing
// both "passport" and "queue" resolves to the passport scenario.
var keywordRules = []struct {
	match func(string) bool
	key   Key
}{
	{func(s string) bool { return strings.Contains(s, "passport") }, PassportLost},
	{func(s string) bool { return strings.Contains(s, "queue") }, LongQueue},
	{func(s string) bool { return idWord.MatchString(s) }, TemperedID},
}

// Detect classifies a free-text utterance into at most one scenario.
// Matching is case-insensitive. After the keyword rules, any registered
// key appearing verbatim in the text matches as a fallback.
func Detect(text string) (Key, bool) {
	lower := strings.ToLower(text)

	for _, rule := range keywordRules {
		if rule.match(lower) {
			return rule.key, true
		}
	}

	for _, sc := range registry {
		if strings.Contains(lower, string(sc.Key)) {
			return sc.Key, true
		}
	}

	return "", false
}
