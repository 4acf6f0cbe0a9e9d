// Package format holds the small text helpers used by templates and SEO
// builders: phone numbers, slugs and excerpts.
package format

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultExcerptLength matches the meta description budget used by search engines.
const DefaultExcerptLength = 160

// DefaultTruncateLength is used when callers pass a non-positive limit.
const DefaultTruncateLength = 150

var (
	nonDigit      = regexp.MustCompile(`\D`)
	nonSlugChars  = regexp.MustCompile(`[^\w\s-]`)
	slugSeparator = regexp.MustCompile(`[\s_-]+`)
	whitespaceRun = regexp.MustCompile(`\s+`)

	stripPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)
)

// Digits returns only the decimal digits of s.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// NationalDigits returns the digits of a US number without the leading
// country code 1, so "+1 972 555 0100" and "972-555-0100" compare equal.
func NationalDigits(phone string) string {
	cleaned := Digits(phone)
	if len(cleaned) == 11 && cleaned[0] == '1' {
		return cleaned[1:]
	}
	return cleaned
}

// FormatPhoneNumber renders a 10 digit number as (AAA) BBB-CCCC. Anything
// else (vanity numbers, extensions, short strings) is returned unchanged.
func FormatPhoneNumber(phone string) string {
	cleaned := Digits(phone)
	if len(cleaned) != 10 {
		return phone
	}
	return "(" + cleaned[0:3] + ") " + cleaned[3:6] + "-" + cleaned[6:]
}

// TelHref builds a tel: link target.
func TelHref(phone string) string {
	cleaned := Digits(phone)
	if len(cleaned) == 10 {
		return "tel:+1" + cleaned
	}
	return "tel:" + cleaned
}

// CreateSlug lower-cases text and joins its words with hyphens.
func CreateSlug(text string) string {
	slug := strings.ToLower(text)
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = slugSeparator.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// TruncateText shortens text to at most maxLength runes plus "...",
// backing off to the previous word boundary.
func TruncateText(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultTruncateLength
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	cut := runes[:maxLength]
	// A word is split when the cut lands between two non-space runes.
	if !unicode.IsSpace(runes[maxLength]) {
		if idx := lastSpace(cut); idx > 0 {
			cut = cut[:idx]
		}
	}
	return strings.TrimRightFunc(string(cut), unicode.IsSpace) + "..."
}

// GenerateExcerpt strips markup from content and truncates the plain text.
func GenerateExcerpt(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}
	plain := html.UnescapeString(stripPolicy.Sanitize(content))
	plain = strings.TrimSpace(whitespaceRun.ReplaceAllString(plain, " "))
	return TruncateText(plain, maxLength)
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}
