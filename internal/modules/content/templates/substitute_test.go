package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourcopy/tourism-content-be/internal/modules/content/models"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips angle brackets but keeps tag text",
			input:    "<b>Paris</b>  ",
			expected: "bParis/b",
		},
		{
			name:     "trims whitespace",
			input:    "  Lisbon ",
			expected: "Lisbon",
		},
		{
			name:     "plain value untouched",
			input:    "San Sebastián",
			expected: "San Sebastián",
		},
		{
			name:     "only brackets yields empty",
			input:    "<<>>",
			expected: "",
		},
		{
			name:     "empty stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSubstitute_AllFieldsSet(t *testing.T) {
	in := models.FormInput{
		BusinessType: "hotel",
		ContentType:  "social",
		Location:     "Lisbon",
		Season:       "summer",
		Target:       "families",
		Tone:         "friendly",
		Keywords:     "sunny beaches",
	}

	got := Substitute("Visit {location} this {season}, {target}! We love {keywords} and a {tone} {businessType}.", in)
	assert.Equal(t, "Visit Lisbon this summer, families! We love sunny beaches and a friendly hotel.", got)
}

func TestSubstitute_Defaults(t *testing.T) {
	// every optional field empty resolves to its fixed default, never to an
	// empty string or literal placeholder syntax
	got := Substitute("{location} {season} {target} {tone} {keywords} {businessType}", models.FormInput{})
	assert.Equal(t, "your destination this season visitors friendly amazing features business", got)
	assert.NotContains(t, got, "{")
	assert.NotContains(t, got, "}")
}

func TestSubstitute_SanitizesValues(t *testing.T) {
	in := models.FormInput{Location: " <i>Porto</i> "}
	got := Substitute("Welcome to {location}!", in)
	assert.Equal(t, "Welcome to iPorto/i!", got)
}

func TestSubstitute_UnknownTokensPassThrough(t *testing.T) {
	in := models.FormInput{Location: "Porto"}
	got := Substitute("{location} has {hiddenGems} and {weather}", in)
	assert.Equal(t, "Porto has {hiddenGems} and {weather}", got)
}

func TestSubstitute_ReplacesEveryOccurrence(t *testing.T) {
	in := models.FormInput{Location: "Faro"}
	got := Substitute("{location}, {location} and {location} again", in)
	assert.Equal(t, "Faro, Faro and Faro again", got)
}

func TestSubstitute_Idempotent(t *testing.T) {
	inputs := []models.FormInput{
		{},
		{Location: "Lisbon", Season: "winter"},
		{BusinessType: "tour", Location: "Madeira", Target: "hikers", Keywords: "levada walks"},
	}

	for _, in := range inputs {
		for ct, byBusiness := range contentTemplates {
			for bt, tpl := range byBusiness {
				once := Substitute(tpl, in)
				twice := Substitute(once, in)
				assert.Equal(t, once, twice, "substitute must be idempotent for %s/%s", ct, bt)
			}
		}
	}
}

func TestSubstitute_StoreTemplatesFullyResolved(t *testing.T) {
	// with all fields set, no template in the store leaves a recognized
	// placeholder behind
	in := models.FormInput{
		BusinessType: "hotel",
		Location:     "Lisbon",
		Season:       "summer",
		Target:       "families",
		Tone:         "friendly",
		Keywords:     "sunny beaches",
	}

	for ct, byBusiness := range contentTemplates {
		for bt, tpl := range byBusiness {
			got := Substitute(tpl, in)
			for _, p := range placeholders {
				assert.False(t, strings.Contains(got, p.token),
					"template %s/%s left %s unresolved", ct, bt, p.token)
			}
		}
	}
}
