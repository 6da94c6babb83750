// Package genai is a thin client for the Gemini generative language API.
// It covers the three calls the planner makes: streamed assistant chat,
// structured budget suggestion, and inspiration image generation.
package genai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	chatModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.5-flash-image"

	systemInstruction = "You are a professional, warm, and helpful wedding planner assistant named 'Bella'. " +
		"Help the user with wedding etiquette, ideas, vows, and planning advice. Keep responses concise but friendly."
)

// Client calls the Gemini REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	apiKey     string
}

// NewClient creates a Gemini API client.
func NewClient(httpClient *http.Client, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// Turn is one prior exchange of the chat transcript.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// BudgetSuggestion is one AI-proposed budget line.
type BudgetSuggestion struct {
	Category  string  `json:"category"`
	Estimated float64 `json:"estimated"`
}

// Request/response wire types. Only the fields the planner reads are mapped.

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// budgetSchema constrains the suggestion reply to a JSON array of
// {category, estimated} objects.
var budgetSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"category": {"type": "STRING"},
			"estimated": {"type": "NUMBER"}
		},
		"required": ["category", "estimated"]
	}
}`)

// ChatStream sends the transcript plus the new user message and delivers
// the reply incrementally: onDelta is called once per text chunk, in
// order, on the calling goroutine. A non-nil error from onDelta aborts
// the stream.
func (c *Client) ChatStream(ctx context.Context, history []Turn, message string, onDelta func(text string) error) error {
	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, content{Role: turn.Role, Parts: []part{{Text: turn.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	req := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          contents,
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s", c.baseURL, chatModel, c.apiKey)
	resp, err := c.post(ctx, url, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}

		var chunk generateResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return fmt.Errorf("malformed stream chunk: %w", err)
		}
		if text := firstText(&chunk); text != "" {
			if err := onDelta(text); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream interrupted: %w", err)
	}
	return nil
}

// SuggestBudget asks the model for a budget breakdown for the given total
// amount, guest count, and location. The reply is validated against a
// fixed JSON schema on the API side.
func (c *Client) SuggestBudget(ctx context.Context, totalBudget float64, guestCount int, location string) ([]BudgetSuggestion, error) {
	prompt := fmt.Sprintf(
		"Create a detailed wedding budget breakdown for a total budget of Rs. %.0f (Indian Rupees) for %d guests in %s. "+
			"Return a JSON array of budget items. "+
			"IMPORTANT: Keep 'category' names short (max 2-3 words) to fit in charts. "+
			"Each item should have a category and an estimated cost.",
		totalBudget, guestCount, location,
	)

	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   budgetSchema,
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, chatModel, c.apiKey)
	resp, err := c.post(ctx, url, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("malformed suggestion response: %w", err)
	}

	text := firstText(&body)
	if text == "" {
		return nil, fmt.Errorf("suggestion response contained no text")
	}

	var suggestions []BudgetSuggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, fmt.Errorf("suggestion text is not a budget array: %w", err)
	}
	return suggestions, nil
}

// GenerateImage asks the image model for a wedding inspiration image and
// returns its base64 payload. An empty string with a nil error means the
// model replied without an image; the caller decides how to surface that.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: "High quality, photorealistic, wedding inspiration: " + prompt}},
		}},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, imageModel, c.apiKey)
	resp, err := c.post(ctx, url, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("malformed image response: %w", err)
	}

	for _, candidate := range body.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return p.InlineData.Data, nil
			}
		}
	}
	return "", nil
}

// post sends a JSON request and returns the response when it is 2xx.
func (c *Client) post(ctx context.Context, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return resp, nil
}

func firstText(resp *generateResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			sb.WriteString(p.Text)
		}
		break
	}
	return sb.String()
}
