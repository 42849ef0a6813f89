// Package ai calls Gemini for the two summarization tasks the admin desk
// uses: condensing citizen complaints and digesting official documents.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

type GeminiCandidate struct {
	Content GeminiContent `json:"content"`
}

// ComplaintSummary is the structured digest stored alongside a complaint.
type ComplaintSummary struct {
	Summary   string           `json:"summary"`
	Sentiment models.Sentiment `json:"sentiment"`
	Keywords  []string         `json:"keywords"`
}

type DocumentSummary struct {
	Summary string `json:"summary"`
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithEndpoint points the client at a different generateContent URL.
// Tests use it to aim at a local server.
func NewClientWithEndpoint(apiKey, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, http: httpClient}
}

// SummarizeComplaint produces a summary, sentiment, and keyword list for a
// citizen complaint. A response whose sentiment falls outside the known set
// is an error so a half-analyzed complaint never reaches storage.
func (c *Client) SummarizeComplaint(ctx context.Context, complaintText string) (*ComplaintSummary, error) {
	prompt := fmt.Sprintf(`You are an AI assistant specialized in summarizing public feedback and complaints for village administrators.
Your goal is to provide a concise summary, identify the sentiment, and extract key topics from the given text.

Complaint/Feedback Text: %s

Respond STRICTLY as JSON:
{
  "summary": "a concise summary of the complaint or feedback",
  "sentiment": "positive" | "neutral" | "negative",
  "keywords": ["keyword", "..."]
}`, complaintText)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result ComplaintSummary
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}
	if !result.Sentiment.Valid() {
		return nil, fmt.Errorf("AI returned unknown sentiment %q", result.Sentiment)
	}
	return &result, nil
}

// SummarizeDocument condenses a village report or official letter.
func (c *Client) SummarizeDocument(ctx context.Context, documentContent string) (*DocumentSummary, error) {
	prompt := fmt.Sprintf(`As an expert village administrator, you need to summarize the following report or official letter. Extract the key points and present them in a clear, concise, and human-readable format.

Document Content:
%s

Respond STRICTLY as JSON:
{
  "summary": "the key points of the document"
}`, documentContent)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result DocumentSummary
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}
	if result.Summary == "" {
		return nil, fmt.Errorf("AI returned an empty summary")
	}
	return &result, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	reqBody := GeminiRequest{
		Contents: []GeminiContent{
			{Parts: []GeminiPart{{Text: prompt}}},
		},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach Gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini responded %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to decode Gemini response: %w", err)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini returned no candidates")
	}

	// Strip the markdown fence the model often wraps JSON in.
	text := geminiResp.Candidates[0].Content.Parts[0].Text
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "`")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSpace(text)

	return text, nil
}
