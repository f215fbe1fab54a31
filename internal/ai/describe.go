package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerateProductDescription asks Gemini for a one-sentence Spanish product
// description for the catalog seed. Callers fall back to static text on error.
func GenerateProductDescription(ctx context.Context, apiKey, name, category string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	prompt := fmt.Sprintf(
		"Write one short appealing Spanish sentence describing the product %q (category: %s) for a garden store catalog. Reply with the sentence only.",
		name, category,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return strings.TrimSpace(string(txt)), nil
		}
	}
	return "", fmt.Errorf("empty response for %s", name)
}
