package services

import (
	"fmt"
	"strings"

	"github.com/tourcopy/tourism-content-be/internal/modules/content/models"
)

const writerSystemPrompt = "You are a professional tourism content writer specializing in creating compelling, engaging content for tourism businesses. Always write in the specified tone and format. If an image is provided, incorporate visual details into the content."

const taglineSystemPrompt = "You are a marketing expert who creates compelling taglines and variations."

var businessPhrases = map[string]string{
	models.BusinessHotel:       "hotel or resort",
	models.BusinessRestaurant:  "restaurant",
	models.BusinessTour:        "tour operator or guide service",
	models.BusinessAttraction:  "tourist attraction or activity",
	models.BusinessDestination: "destination marketing",
	models.BusinessRental:      "vacation rental property",
}

var contentPhrases = map[string]string{
	models.ContentBlog:        "blog post with headings and engaging content",
	models.ContentSocial:      "social media post with emojis and hashtags",
	models.ContentEmail:       "email campaign with subject line and body",
	models.ContentAd:          "advertisement copy that is concise and compelling",
	models.ContentDescription: "business description for website or marketing materials",
	models.ContentNewsletter:  "newsletter content with engaging sections",
}

var tonePhrases = map[string]string{
	"friendly":     "friendly and welcoming",
	"professional": "professional and authoritative",
	"exciting":     "exciting and energetic",
	"luxury":       "luxury and sophisticated",
	"casual":       "casual and relaxed",
	"informative":  "informative and helpful",
}

func phrase(m map[string]string, key string) string {
	if p, ok := m[key]; ok {
		return p
	}
	return key
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// buildMainPrompt interpolates the form input into the fixed instruction
// template for the main-content call. imageDescription is appended when an
// image was attached.
func buildMainPrompt(in models.FormInput, imageDescription string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Create a %s for a %s in %s.\n\n",
		phrase(contentPhrases, in.ContentType),
		phrase(businessPhrases, in.BusinessType),
		in.Location)

	sb.WriteString("Business Details:\n")
	fmt.Fprintf(&sb, "- Location: %s\n", in.Location)
	fmt.Fprintf(&sb, "- Season: %s\n", orDefault(in.Season, "any season"))
	fmt.Fprintf(&sb, "- Target Audience: %s\n", orDefault(in.Target, "general travelers"))
	fmt.Fprintf(&sb, "- Tone: %s\n", orDefault(tonePhrases[in.Tone], "friendly"))
	fmt.Fprintf(&sb, "- Key Features: %s", orDefault(in.Keywords, "amazing experiences and local charm"))

	if imageDescription != "" {
		fmt.Fprintf(&sb, "\n\nImage Description: %s", imageDescription)
	}

	sb.WriteString("\n\nRequirements:\n")
	fmt.Fprintf(&sb, "- Write in a %s tone\n", orDefault(tonePhrases[in.Tone], "friendly"))
	fmt.Fprintf(&sb, "- Target audience: %s\n", orDefault(in.Target, "general travelers"))
	fmt.Fprintf(&sb, "- Include specific details about %s\n", in.Location)
	sb.WriteString("- Make it engaging and compelling\n")
	fmt.Fprintf(&sb, "- Use appropriate formatting for %s\n", in.ContentType)
	sb.WriteString("- Include relevant hashtags if it's social media content\n")
	sb.WriteString("- Keep it authentic and local-focused\n\n")
	sb.WriteString("Please generate the content now:")

	return sb.String()
}

// buildVariationsPrompt builds the tagline-variations instruction. The image
// description from the main call is reused so the image collaborator is
// consulted at most once per request.
func buildVariationsPrompt(in models.FormInput, imageDescription string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate 3 different variations of a short, compelling tagline for a %s in %s.\n",
		in.BusinessType, in.Location)
	fmt.Fprintf(&sb, "Target audience: %s. Season: %s.\n",
		orDefault(in.Target, "general travelers"),
		orDefault(in.Season, "any season"))
	sb.WriteString("Each variation should be 1-2 sentences maximum. Return only the variations, one per line.")

	if imageDescription != "" {
		fmt.Fprintf(&sb, "\n\nImage context: %s", imageDescription)
	}

	return sb.String()
}
