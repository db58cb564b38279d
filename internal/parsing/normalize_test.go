package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Whitespace only", "   \n\t ", ""},
		{"Lowercases", "Python SQL", "python sql"},
		{"Strips punctuation", "Python, SQL & Tableau!", "python sql tableau"},
		{"Strips email", "contact: jane.doe@example.com today", "contact today"},
		{"Strips http URL", "see https://github.com/jane for code", "see for code"},
		{"Strips www URL", "visit www.example.com now", "visit now"},
		{"Strips dashed phone", "call +1 555-123-4567 now", "call now"},
		{"Strips dotted phone", "call 555.123.4567 now", "call now"},
		{"Keeps short numbers", "5 years of go 1 22", "5 years of go 1 22"},
		{"Collapses whitespace", "data    science\n\nmachine\tlearning", "data science machine learning"},
		{"Replaces non-ascii letters", "café résumé", "caf r sum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Experienced Data Scientist skilled in Python, SQL, machine learning, Tableau.",
		"Email me: a@b.co | Phone: (555) 123-4567 | Web: http://me.dev",
		"1.2.3.4.5.6.7.8.9 digits split by dots",
		"HTTP and WWW in caps, plus httpserver and wwwroot",
		"C++ / C# / .NET developer; 10+ years",
		"ünïcödé text — with dashes – and “quotes”",
	}

	for _, in := range inputs {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once), "CleanText should be idempotent for %q", in)
	}
}

func TestCleanText_NoEmailOrURLRemnants(t *testing.T) {
	inputs := []string{
		"reach me at someone@example.org or other@x.io",
		"profile: https://linkedin.com/in/someone and http://x.y",
		"portfolio www.site.com / wwwsite / httpclient",
		"plain http and www words",
	}

	for _, in := range inputs {
		out := CleanText(in)
		assert.NotContains(t, out, "@")
		assert.NotContains(t, out, "http")
		assert.NotContains(t, out, "www")
	}
}

func TestIsSuspiciouslyShort(t *testing.T) {
	assert.False(t, IsSuspiciouslyShort(""), "empty text is missing, not short")
	assert.True(t, IsSuspiciouslyShort("Python developer"))
	assert.False(t, IsSuspiciouslyShort(strings.Repeat("a", MinCharCount)))
}
