package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"driveyard/internal/domain/entity"
	"driveyard/pkg/logger"
)

// GeminiClient calls the Generative Language REST API to write ad copy
// for a listing draft. One shot per request, no retry; a failure goes
// straight back to the admin form.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *GeminiClient) Generate(ctx context.Context, attrs entity.ListingAttributes) (string, error) {
	prompt := buildPrompt(attrs)

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ad copy request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	var result generateContentResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}

	if result.Error != nil {
		logger.Error("Gemini API error %d: %s", result.Error.Code, result.Error.Message)
		return "", fmt.Errorf("ad copy generation failed: %s", result.Error.Message)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("ad copy generation returned no candidates")
	}

	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}

func buildPrompt(attrs entity.ListingAttributes) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short, enthusiastic sales description for this car listing:\n")
	fmt.Fprintf(&b, "Make: %s\nModel: %s\nYear: %d\n", attrs.Make, attrs.Model, attrs.Year)
	fmt.Fprintf(&b, "Price: %.0f\nMileage: %.0f\nCondition: %s\n", attrs.Price, attrs.Mileage, attrs.Condition)
	if len(attrs.Features) > 0 {
		fmt.Fprintf(&b, "Features: %s\n", strings.Join(attrs.Features, ", "))
	}
	b.WriteString("Keep it between 50 and 150 words. Do not invent features that are not listed.")
	return b.String()
}
