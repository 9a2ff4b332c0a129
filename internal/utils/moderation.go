package utils

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultBannedTerms are slurs and calls to violence that get a submitting
// device blocked. Extend through Moderation.ExtraBannedWords.
var DefaultBannedTerms = []string{
	"faggot", "faggots", "fag", "fags", "dyke", "dykes", "tranny", "trannies",
	"shemale", "sodomite", "sodomites", "nigger", "niggers", "kike", "spic",
	"chink", "retard", "groomer", "groomers", "troon", "troons",
	"kill all gays", "death to gays", "burn in hell",
}

// HateSpeechFilter finds banned terms in free text. ASCII terms only match
// on word boundaries so "Scunthorpe"-style false positives are avoided.
type HateSpeechFilter struct {
	patterns []*regexp.Regexp
}

// NewHateSpeechFilter builds a filter from a list of banned terms.
func NewHateSpeechFilter(terms []string) *HateSpeechFilter {
	uniq := make([]string, 0, len(terms))
	seen := map[string]struct{}{}
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		uniq = append(uniq, t)
	}
	// Longer phrases first so Match reports the most specific term.
	sort.Slice(uniq, func(i, j int) bool {
		return len([]rune(uniq[i])) > len([]rune(uniq[j]))
	})

	pats := make([]*regexp.Regexp, 0, len(uniq))
	for _, t := range uniq {
		var pattern string
		if isASCII(t) {
			words := strings.Fields(t)
			for i, w := range words {
				words[i] = regexp.QuoteMeta(w)
			}
			pattern = `(?i)\b` + strings.Join(words, `\s+`) + `\b`
		} else {
			pattern = `(?i)` + regexp.QuoteMeta(t)
		}
		pats = append(pats, regexp.MustCompile(pattern))
	}
	return &HateSpeechFilter{patterns: pats}
}

// Match returns the first banned term found in any of texts.
func (f *HateSpeechFilter) Match(texts ...string) (string, bool) {
	for _, s := range texts {
		if s == "" {
			continue
		}
		for _, re := range f.patterns {
			if m := re.FindString(s); m != "" {
				return m, true
			}
		}
	}
	return "", false
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
