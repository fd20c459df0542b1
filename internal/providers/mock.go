package providers

import (
	"context"
	"strings"
)

// MockProvider returns deterministic text so the chat path can run without
// any external API key.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	_ = ctx
	info := ProviderInfo{Name: "mock", Model: "mock-llm-v1", Key: "mock"}
	prompt := strings.ToLower(req.Prompt)
	text := "Saya adalah asisten perpustakaan. Ada yang bisa saya bantu?"
	switch {
	case strings.Contains(prompt, "halo"), strings.Contains(prompt, "hello"), strings.Contains(prompt, "hi "):
		text = "Halo! Ada yang bisa saya bantu seputar perpustakaan?"
	case strings.Contains(prompt, "terima kasih"), strings.Contains(prompt, "thank"):
		text = "Sama-sama! Beri tahu saya jika butuh bantuan lain."
	case strings.Contains(prompt, "rekomendasi"), strings.Contains(prompt, "recommend"):
		text = "Beberapa judul populer:\n* Atomic Habits\n* Deep Work\n* Sapiens"
	}
	return GenerateResponse{Text: text}, info, nil
}
