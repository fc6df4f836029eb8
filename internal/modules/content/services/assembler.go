package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tourcopy/tourism-content-be/internal/modules/content/models"
	"github.com/tourcopy/tourism-content-be/internal/modules/content/templates"
	"github.com/tourcopy/tourism-content-be/internal/shared/utils"
)

// Result makes the assembler's fallback path an explicit branch instead of a
// swallowed exception: Fallback is true when the bundle is the fixed error
// bundle, with Reason carrying the cause.
type Result struct {
	Bundle   models.Bundle
	Fallback bool
	Reason   string
}

// Assembler produces a content bundle from the static template store. It is
// the offline counterpart of the Pipeline and never fails past its boundary.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble builds the three-part bundle: substituted main template, the
// business type's tagline variations joined with blank lines, and its
// hashtag set joined with spaces. Inputs are sanitized before lookup, so
// padded or markup-wrapped type fields still resolve their templates. A
// fault anywhere degrades to the fixed fallback bundle; it never propagates.
func (a *Assembler) Assemble(in models.FormInput) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			utils.LogError("Template assembly fault", fmt.Errorf("%v", r), map[string]interface{}{
				"content_type":  in.ContentType,
				"business_type": in.BusinessType,
			})
			res = fallbackResult(fmt.Sprint(r))
		}
	}()

	in = sanitizeInput(in)

	main := templates.Substitute(templates.Lookup(in.ContentType, in.BusinessType), in)

	variations := templates.Variations(in.BusinessType)
	for i, v := range variations {
		variations[i] = templates.Substitute(v, in)
	}

	return Result{
		Bundle: models.Bundle{
			Main:       main,
			Variations: strings.Join(variations, "\n\n"),
			Hashtags:   strings.Join(templates.Hashtags(in.BusinessType), " "),
		},
	}
}

// Generate adapts Assemble to the Generator contract used by the session
// controller. The image is ignored: template assembly is fully local.
func (a *Assembler) Generate(ctx context.Context, in models.FormInput, image []byte) (models.Bundle, error) {
	return a.Assemble(in).Bundle, nil
}

func fallbackResult(reason string) Result {
	return Result{
		Bundle: models.Bundle{
			Main:       "Error generating content. Please try again.",
			Variations: "Error generating variations.",
			Hashtags:   "#Error #TryAgain",
		},
		Fallback: true,
		Reason:   reason,
	}
}
