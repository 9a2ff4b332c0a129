package utils

import (
	"crypto/rand"
	"encoding/base64"
	"net/url"
	"strings"
	"unicode"
)

// GenerateRandomString generates a random string of the specified length
func GenerateRandomString(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b)[:length], nil
}

// FormatPhone renders 10-digit (or 1 + 10-digit) North American numbers as
// (555) 123-4567. Anything else is returned trimmed but otherwise untouched.
func FormatPhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return strings.TrimSpace(raw)
	}
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
}

// NormalizeURL adds https:// to bare hosts such as "example.org". Empty or
// unparseable input yields "".
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

// SponsorTierBadge maps a sponsor tier to its display label.
func SponsorTierBadge(tier string) string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "platinum":
		return "Platinum Sponsor"
	case "gold":
		return "Gold Sponsor"
	case "silver":
		return "Silver Sponsor"
	case "bronze":
		return "Bronze Sponsor"
	case "community", "":
		return "Community Partner"
	default:
		t := strings.TrimSpace(tier)
		return strings.ToUpper(t[:1]) + strings.ToLower(t[1:]) + " Sponsor"
	}
}
