package models

import "strings"

// Business types supported by the generator. The template store falls back
// to hotel for anything outside this list, so the enumeration is advisory.
const (
	BusinessHotel       = "hotel"
	BusinessRestaurant  = "restaurant"
	BusinessTour        = "tour"
	BusinessAttraction  = "attraction"
	BusinessDestination = "destination"
	BusinessRental      = "rental"
)

// Content types
const (
	ContentBlog        = "blog"
	ContentSocial      = "social"
	ContentEmail       = "email"
	ContentAd          = "ad"
	ContentDescription = "description"
	ContentNewsletter  = "newsletter"
)

// FormInput is one generation request worth of form fields. BusinessType,
// ContentType and Location are required; the rest have default substitution
// values.
type FormInput struct {
	BusinessType string `json:"businessType" form:"businessType"`
	ContentType  string `json:"contentType" form:"contentType"`
	Location     string `json:"location" form:"location"`
	Season       string `json:"season" form:"season"`
	Target       string `json:"target" form:"target"`
	Tone         string `json:"tone" form:"tone"`
	Keywords     string `json:"keywords" form:"keywords"`
}

// MissingRequired returns the names of required fields that are empty after
// trimming, in field order.
func (f FormInput) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(f.BusinessType) == "" {
		missing = append(missing, "businessType")
	}
	if strings.TrimSpace(f.ContentType) == "" {
		missing = append(missing, "contentType")
	}
	if strings.TrimSpace(f.Location) == "" {
		missing = append(missing, "location")
	}
	return missing
}

// Bundle is the unit produced by one generation request and the unit the UI
// renders and copies. Variations holds the tagline list joined with blank
// lines; Hashtags holds space-separated tags.
type Bundle struct {
	Main       string `json:"main"`
	Variations string `json:"variations"`
	Hashtags   string `json:"hashtags"`
}
