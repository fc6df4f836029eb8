package templates

import (
	"strings"

	"github.com/tourcopy/tourism-content-be/internal/modules/content/models"
)

// placeholders is the closed set of recognized tokens, each paired with the
// default used when the form field is empty. Tokens are matched literally;
// anything else that looks like a placeholder passes through untouched.
var placeholders = []struct {
	token    string
	fallback string
}{
	{"{location}", "your destination"},
	{"{season}", "this season"},
	{"{target}", "visitors"},
	{"{tone}", "friendly"},
	{"{keywords}", "amazing features"},
	{"{businessType}", "business"},
}

// Sanitize strips angle brackets and trims surrounding whitespace. This is a
// defense against markup injection when values are rendered later, not a
// general security sanitizer: "<b>Paris</b>" becomes "bParis/b".
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}

// Substitute replaces every occurrence of the six recognized placeholders
// with the sanitized field value, or with its default when the field is
// empty. The defaults contain no placeholder syntax, so re-applying
// Substitute to its own output is a no-op.
func Substitute(template string, in models.FormInput) string {
	values := []string{
		in.Location,
		in.Season,
		in.Target,
		in.Tone,
		in.Keywords,
		in.BusinessType,
	}

	out := template
	for i, p := range placeholders {
		v := Sanitize(values[i])
		if v == "" {
			v = p.fallback
		}
		out = strings.ReplaceAll(out, p.token, v)
	}
	return out
}
