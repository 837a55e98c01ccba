package services

import (
	"fmt"
	"regexp"
	"strings"
)

// BannedWords are matched case-insensitively as whole words in submitted
// titles and descriptions.
var BannedWords = []string{
	"scam", "fraud", "fake", "spam", "phishing",
	"casino", "betting", "gambling",
}

type ModerationService struct {
	bannedPatterns []*regexp.Regexp
	repeatedChars  func(string) bool
}

func NewModerationService() *ModerationService {
	patterns := make([]*regexp.Regexp, 0, len(BannedWords))
	for _, word := range BannedWords {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return &ModerationService{
		bannedPatterns: patterns,
		repeatedChars:  hasRepeatedRun,
	}
}

// hasRepeatedRun reports whether text contains a run of repeatedCharRun or
// more identical characters, the `(.)\1{9,}` check in backreference syntax;
// Go's RE2 engine has no backreferences, so it is a direct scan. Newlines are
// excluded, as `.` would be.
const repeatedCharRun = 10

func hasRepeatedRun(text string) bool {
	var prev rune
	count := 0
	for _, r := range text {
		if r == prev && r != '\n' {
			count++
		} else {
			prev, count = r, 1
		}
		if count >= repeatedCharRun {
			return true
		}
	}
	return false
}

// FilterContent reports whether text is acceptable for publication. The
// returned reason is safe to surface to the submitting user.
func (s *ModerationService) FilterContent(text string) (bool, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true, ""
	}

	for i, pattern := range s.bannedPatterns {
		if pattern.MatchString(trimmed) {
			return false, fmt.Sprintf("content contains a prohibited term: %s", BannedWords[i])
		}
	}

	if s.repeatedChars(trimmed) {
		return false, "content looks like spam"
	}

	return true, ""
}
