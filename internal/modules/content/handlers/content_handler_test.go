package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourcopy/tourism-content-be/internal/core/llm"
	"github.com/tourcopy/tourism-content-be/internal/core/upload"
	"github.com/tourcopy/tourism-content-be/internal/modules/content/services"
)

type fakeCompleter struct {
	completeFn    func(req llm.CompletionRequest) (string, error)
	describeFn    func(image []byte) (string, error)
	completeCalls []llm.CompletionRequest
	describeCalls int
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	f.completeCalls = append(f.completeCalls, req)
	if f.completeFn != nil {
		return f.completeFn(req)
	}
	return "generated text", nil
}

func (f *fakeCompleter) DescribeImage(ctx context.Context, image []byte) (string, error) {
	f.describeCalls++
	if f.describeFn != nil {
		return f.describeFn(image)
	}
	return "a coastal town at dusk", nil
}

func (f *fakeCompleter) GetProviderName() string { return "fake" }

func setupApp(t *testing.T, mode string, fake *fakeCompleter) *fiber.App {
	t.Helper()

	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	var pipeline *services.Pipeline
	if fake != nil {
		pipeline = services.NewPipeline(fake)
	}

	h := NewContentHandler(mode, pipeline, services.NewAssembler(), store)
	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	app.Post("/api/generate-content", h.GenerateContent)
	app.Get("/api/health", NewHealthHandler(mode).GetHealth)
	return app
}

func validFields() map[string]string {
	return map[string]string{
		"businessType": "hotel",
		"contentType":  "social",
		"location":     "Lisbon",
		"season":       "summer",
		"target":       "families",
		"tone":         "friendly",
		"keywords":     "sunny beaches",
	}
}

func formRequest(t *testing.T, fields map[string]string, image []byte, imageType string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="photo.jpg"`)
		header.Set("Content-Type", imageType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/generate-content", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestGenerateContent_MissingRequiredFields(t *testing.T) {
	fake := &fakeCompleter{}
	app := setupApp(t, "ai", fake)

	req := formRequest(t, map[string]string{"businessType": "hotel"}, nil, "")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Missing required fields: contentType, location", body["error"])
	assert.Empty(t, fake.completeCalls)
}

func TestGenerateContent_AIMode(t *testing.T) {
	fake := &fakeCompleter{
		completeFn: func(req llm.CompletionRequest) (string, error) {
			if strings.Contains(req.User, "Generate 3 different variations") {
				return "One\nTwo\nThree", nil
			}
			return "main copy about Lisbon", nil
		},
	}
	app := setupApp(t, "ai", fake)

	resp, err := app.Test(formRequest(t, validFields(), nil, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "main copy about Lisbon", body["main"])

	// variations are a list in this mode
	variations, ok := body["variations"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"One", "Two", "Three"}, variations)

	hashtags, ok := body["hashtags"].(string)
	require.True(t, ok)
	assert.Contains(t, hashtags, "#Lisbon")
}

func TestGenerateContent_AIModeUpstreamFailure(t *testing.T) {
	fake := &fakeCompleter{
		completeFn: func(req llm.CompletionRequest) (string, error) {
			return "", errors.New("upstream unavailable")
		},
	}
	app := setupApp(t, "ai", fake)

	resp, err := app.Test(formRequest(t, validFields(), nil, ""))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Failed to generate content", body["error"])
	assert.Equal(t, "upstream unavailable", body["details"])
}

func TestGenerateContent_LocalMode(t *testing.T) {
	app := setupApp(t, "local", nil)

	resp, err := app.Test(formRequest(t, validFields(), nil, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)

	main, ok := body["main"].(string)
	require.True(t, ok)
	assert.Contains(t, main, "Lisbon")
	assert.NotContains(t, main, "{location}")

	// variations are a joined string in this mode
	variations, ok := body["variations"].(string)
	require.True(t, ok)
	assert.Contains(t, variations, "\n\n")

	hashtags, ok := body["hashtags"].(string)
	require.True(t, ok)
	assert.Equal(t, "#Travel", strings.Fields(hashtags)[0])
}

func TestGenerateContent_WithImage(t *testing.T) {
	fake := &fakeCompleter{
		describeFn: func(image []byte) (string, error) {
			return "a tiled rooftop overlooking the sea", nil
		},
	}
	app := setupApp(t, "ai", fake)

	resp, err := app.Test(formRequest(t, validFields(), []byte{0xff, 0xd8, 0xff}, "image/jpeg"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 1, fake.describeCalls)
	require.Len(t, fake.completeCalls, 2)
	assert.Contains(t, fake.completeCalls[0].User, "Image Description: a tiled rooftop overlooking the sea")
}

func TestGenerateContent_RejectsNonImageUpload(t *testing.T) {
	fake := &fakeCompleter{}
	app := setupApp(t, "ai", fake)

	resp, err := app.Test(formRequest(t, validFields(), []byte("%PDF-1.4"), "application/pdf"))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "only image uploads are supported", body["error"])
	assert.Empty(t, fake.completeCalls)
}

func TestGenerateContent_RejectsOversizedImage(t *testing.T) {
	fake := &fakeCompleter{}
	app := setupApp(t, "ai", fake)

	oversized := bytes.Repeat([]byte{0xab}, 5*1024*1024+1)
	resp, err := app.Test(formRequest(t, validFields(), oversized, "image/png"), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "image must be smaller than 5MB", body["error"])
	assert.Empty(t, fake.completeCalls)
}

func TestGetHealth(t *testing.T) {
	app := setupApp(t, "local", nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Tourism AI Content Generator API is running", body["message"])
	assert.Equal(t, "local", body["mode"])
}
