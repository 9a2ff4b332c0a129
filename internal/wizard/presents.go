package wizard

import (
	"regexp"
	"strings"
)

const presentsSuffix = " Presents:"

func presentsPrefix(org string) string {
	return strings.TrimSpace(org) + presentsSuffix + " "
}

func presentsRe(org string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(strings.TrimSpace(org)+presentsSuffix) + `\s*`)
}

// HasPresents reports whether text opens with "{org} Presents:", ignoring
// case.
func HasPresents(text, org string) bool {
	if strings.TrimSpace(org) == "" {
		return false
	}
	return presentsRe(org).MatchString(text)
}

// ApplyPresents prepends "{org} Presents: " unless it is already there.
func ApplyPresents(text, org string) string {
	if strings.TrimSpace(org) == "" || HasPresents(text, org) {
		return text
	}
	return presentsPrefix(org) + text
}

// StripPresents removes a leading "{org} Presents:" banner. The exact form
// written by ApplyPresents is removed first so that apply then strip is the
// identity.
func StripPresents(text, org string) string {
	if strings.TrimSpace(org) == "" {
		return text
	}
	prefix := presentsPrefix(org)
	if strings.HasPrefix(text, prefix) {
		return text[len(prefix):]
	}
	return presentsRe(org).ReplaceAllString(text, "")
}

// TogglePresents applies or strips the banner.
func TogglePresents(text, org string, on bool) string {
	if on {
		return ApplyPresents(text, org)
	}
	return StripPresents(text, org)
}

// SetPresents toggles the banner on the wizard's description. The result
// is held to MaxDescriptionLength like any other edit.
func (w *Wizard) SetPresents(org string, on bool) {
	w.Draft.SetDescription(TogglePresents(w.Draft.Description, org, on))
}
