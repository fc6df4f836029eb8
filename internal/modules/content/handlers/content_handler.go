package handlers

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tourcopy/tourism-content-be/internal/core/upload"
	"github.com/tourcopy/tourism-content-be/internal/modules/content/models"
	"github.com/tourcopy/tourism-content-be/internal/modules/content/services"
	"github.com/tourcopy/tourism-content-be/internal/shared/utils"
)

// Uploads past this size are rejected before any generation work starts.
const maxImageSize = 5 * 1024 * 1024

// ContentHandler handles content generation requests
type ContentHandler struct {
	pipeline  *services.Pipeline
	assembler *services.Assembler
	store     *upload.Store
	mode      string
}

// NewContentHandler creates a new content handler. The pipeline may be nil
// when the handler runs in local mode.
func NewContentHandler(mode string, pipeline *services.Pipeline, assembler *services.Assembler, store *upload.Store) *ContentHandler {
	return &ContentHandler{
		pipeline:  pipeline,
		assembler: assembler,
		store:     store,
		mode:      mode,
	}
}

// GenerateContent godoc
// @Summary Generate tourism marketing content
// @Description Generate main marketing copy, tagline variations and hashtags from business form fields, optionally guided by an uploaded image
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Param businessType formData string true "Business type (hotel, restaurant, tour, attraction, destination, rental)"
// @Param contentType formData string true "Content type (blog, social, email, ad, description, newsletter)"
// @Param location formData string true "Business location"
// @Param season formData string false "Season or time of year"
// @Param target formData string false "Target audience"
// @Param tone formData string false "Desired tone"
// @Param keywords formData string false "Key features to highlight"
// @Param image formData file false "Image to describe and fold into the prompts"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /generate-content [post]
func (h *ContentHandler) GenerateContent(c *fiber.Ctx) error {
	in := models.FormInput{
		BusinessType: c.FormValue("businessType"),
		ContentType:  c.FormValue("contentType"),
		Location:     c.FormValue("location"),
		Season:       c.FormValue("season"),
		Target:       c.FormValue("target"),
		Tone:         c.FormValue("tone"),
		Keywords:     c.FormValue("keywords"),
	}

	if missing := in.MissingRequired(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: " + strings.Join(missing, ", "),
		})
	}

	imageData, status, msg := h.readImage(c)
	if status != 0 {
		return c.Status(status).JSON(fiber.Map{
			"error": msg,
		})
	}

	log.Printf("📝 Generating %s content for %s in %s (mode: %s)", in.ContentType, in.BusinessType, in.Location, h.mode)

	if h.mode == "ai" {
		main, variations, hashtags, err := h.pipeline.GenerateParts(c.Context(), in, imageData)
		if err != nil {
			utils.LogError("Content generation failed", err, map[string]interface{}{
				"provider":      h.pipeline.ProviderName(),
				"content_type":  in.ContentType,
				"business_type": in.BusinessType,
			})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to generate content",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"main":       main,
			"variations": variations,
			"hashtags":   hashtags,
		})
	}

	res := h.assembler.Assemble(in)
	if res.Fallback {
		utils.LogWarn("Template assembly degraded to fallback bundle", map[string]interface{}{
			"reason": res.Reason,
		})
	}
	return c.JSON(fiber.Map{
		"main":       res.Bundle.Main,
		"variations": res.Bundle.Variations,
		"hashtags":   res.Bundle.Hashtags,
	})
}

// readImage pulls the optional image out of the multipart form. The file is
// staged through the upload store and removed once its bytes are in memory.
// A non-zero status means the request should be rejected with msg.
func (h *ContentHandler) readImage(c *fiber.Ctx) (data []byte, status int, msg string) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// no image attached
		return nil, 0, ""
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fiber.StatusBadRequest, "only image uploads are supported"
	}
	if fileHeader.Size > maxImageSize {
		return nil, fiber.StatusBadRequest, "image must be smaller than 5MB"
	}

	path, err := h.store.SaveMultipart(fileHeader)
	if err != nil {
		utils.LogError("Failed to store uploaded image", err, nil)
		return nil, fiber.StatusInternalServerError, "failed to process uploaded image"
	}
	defer h.store.Remove(path)

	data, err = os.ReadFile(path)
	if err != nil {
		utils.LogError("Failed to read stored image", err, nil)
		return nil, fiber.StatusInternalServerError, "failed to process uploaded image"
	}
	return data, 0, ""
}
