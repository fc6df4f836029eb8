package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/tourcopy/tourism-content-be/internal/core/llm"
	"github.com/tourcopy/tourism-content-be/internal/modules/content/models"
	"github.com/tourcopy/tourism-content-be/internal/modules/content/templates"
	"github.com/tourcopy/tourism-content-be/internal/shared/utils"
)

// Completer is the external generation collaborator: a text completion
// capability plus optional image understanding. Both are treated as opaque,
// potentially-failing remote calls with no retry.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
	DescribeImage(ctx context.Context, image []byte) (string, error)
	GetProviderName() string
}

const fallbackImageDescription = "A beautiful image of the location."

// Pipeline generates a content bundle through the external completion API:
// one call for main content, one for tagline variations, plus at most one
// image-description call when an image is attached. Hashtags are computed
// locally and never call out.
type Pipeline struct {
	llm Completer
}

func NewPipeline(completer Completer) *Pipeline {
	return &Pipeline{llm: completer}
}

// ProviderName reports the underlying completion provider.
func (p *Pipeline) ProviderName() string {
	return p.llm.GetProviderName()
}

// GenerateParts runs the pipeline and returns the three content items
// separately, variations as the parsed tagline list.
//
// Failure boundaries: a main-content failure is returned to the caller and
// fails the whole request. An image-description failure degrades to a fixed
// description, and a variations failure degrades to three fixed taglines;
// neither blocks the other calls.
func (p *Pipeline) GenerateParts(ctx context.Context, in models.FormInput, image []byte) (string, []string, string, error) {
	in = sanitizeInput(in)

	// The description must be in hand before the main-content call so it can
	// be folded into the prompt.
	imageDescription := ""
	if len(image) > 0 {
		desc, err := p.llm.DescribeImage(ctx, image)
		if err != nil {
			utils.LogWarn("Image description failed, using fallback", map[string]interface{}{
				"provider": p.llm.GetProviderName(),
				"error":    err.Error(),
			})
			desc = fallbackImageDescription
		}
		imageDescription = desc
	}

	main, err := p.llm.Complete(ctx, llm.CompletionRequest{
		System:      writerSystemPrompt,
		User:        buildMainPrompt(in, imageDescription),
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", nil, "", err
	}

	variations := p.generateVariations(ctx, in, imageDescription)
	hashtags := strings.Join(buildHashtags(in.BusinessType, in.Location), " ")

	return main, variations, hashtags, nil
}

// Generate adapts GenerateParts to the Generator contract, joining the
// variations with blank lines.
func (p *Pipeline) Generate(ctx context.Context, in models.FormInput, image []byte) (models.Bundle, error) {
	main, variations, hashtags, err := p.GenerateParts(ctx, in, image)
	if err != nil {
		return models.Bundle{}, err
	}
	return models.Bundle{
		Main:       main,
		Variations: strings.Join(variations, "\n\n"),
		Hashtags:   hashtags,
	}, nil
}

func (p *Pipeline) generateVariations(ctx context.Context, in models.FormInput, imageDescription string) []string {
	raw, err := p.llm.Complete(ctx, llm.CompletionRequest{
		System:      taglineSystemPrompt,
		User:        buildVariationsPrompt(in, imageDescription),
		Temperature: 0.8,
		MaxTokens:   200,
	})
	if err != nil {
		utils.LogWarn("Variations call failed, using fallback taglines", map[string]interface{}{
			"provider": p.llm.GetProviderName(),
			"error":    err.Error(),
		})
		return fallbackVariations(in.Location)
	}

	var variations []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			variations = append(variations, line)
		}
	}
	return variations
}

func fallbackVariations(location string) []string {
	return []string{
		"Experience the magic of " + location,
		"Discover " + location + " like never before",
		"Your perfect getaway in " + location,
	}
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	nonAlnumPattern   = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// buildHashtags extends the store's base set with a tag derived from the
// location (whitespace and non-alphanumerics stripped) and two fixed closing
// tags. "San José!" derives #SanJos; the strip is deliberately naive.
func buildHashtags(businessType, location string) []string {
	tags := templates.Hashtags(businessType)
	derived := "#" + nonAlnumPattern.ReplaceAllString(whitespacePattern.ReplaceAllString(location, ""), "")
	return append(tags, derived, "#VisitLocal", "#TravelMore")
}

func sanitizeInput(in models.FormInput) models.FormInput {
	return models.FormInput{
		BusinessType: templates.Sanitize(in.BusinessType),
		ContentType:  templates.Sanitize(in.ContentType),
		Location:     templates.Sanitize(in.Location),
		Season:       templates.Sanitize(in.Season),
		Target:       templates.Sanitize(in.Target),
		Tone:         templates.Sanitize(in.Tone),
		Keywords:     templates.Sanitize(in.Keywords),
	}
}
