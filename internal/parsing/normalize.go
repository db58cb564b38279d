// Package parsing provides text normalization applied to resumes and job descriptions
// before skill extraction and embedding.
package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinCharCount is the length below which extracted text is likely incomplete
// (a scanned PDF or a failed extraction) and worth a warning.
const MinCharCount = 300

var (
	reEmail    = regexp.MustCompile(`\S+@\S+`)
	reURL      = regexp.MustCompile(`http\S*|www\S*`)
	rePhone    = regexp.MustCompile(`\+?\d[\d\s\-]{7,}\d`)
	reNonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// CleanText lowercases text and strips emails, URLs, phone numbers and
// punctuation, leaving single-space separated [a-z0-9] words.
//
// Phone numbers are removed after punctuation is replaced so that numbers
// written with dots or parentheses are caught and CleanText stays idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = reEmail.ReplaceAllString(text, " ")
	text = reURL.ReplaceAllString(text, " ")
	text = reNonAlnum.ReplaceAllString(text, " ")
	text = rePhone.ReplaceAllString(text, " ")
	text = reSpaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CharCount returns the number of characters (runes) in text, ignoring
// surrounding whitespace.
func CharCount(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text))
}

// IsSuspiciouslyShort reports whether non-empty text is shorter than MinCharCount.
func IsSuspiciouslyShort(text string) bool {
	n := CharCount(text)
	return n > 0 && n < MinCharCount
}
