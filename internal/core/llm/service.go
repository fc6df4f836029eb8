package llm

import (
	"context"
	"log"
)

// Service wraps LLM provider untuk dependency injection
type Service struct {
	provider Provider
}

// NewService creates LLM service with provider from environment
func NewService() *Service {
	cfg, err := LoadProviderFromEnv()
	if err != nil {
		log.Fatalf("❌ Failed to load LLM config: %v", err)
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create LLM provider: %v", err)
	}

	log.Printf("🤖 Using LLM provider: %s (model: %s)", provider.GetProviderName(), cfg.Model)

	return &Service{provider: provider}
}

// NewServiceWithProvider creates service with custom provider (for testing)
func NewServiceWithProvider(provider Provider) *Service {
	return &Service{provider: provider}
}

// Complete generates a single chat completion
func (s *Service) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return s.provider.Complete(ctx, req)
}

// DescribeImage returns a text description of image bytes
func (s *Service) DescribeImage(ctx context.Context, image []byte) (string, error) {
	return s.provider.DescribeImage(ctx, image)
}

// GetProviderName returns current provider name
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
