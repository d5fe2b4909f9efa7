package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hiremind/backend/pkg/llm"
	"github.com/hiremind/backend/pkg/locale"
)

// Client talks to a Gemini relay: a fronting endpoint that holds the upstream
// credential and accepts the raw generateContent request shape. The service
// never embeds the Gemini API key itself.
type Client struct {
	RelayURL string
	// APIKey authenticates against the relay (not against Gemini). Optional.
	APIKey string
	Model  string
	httpDo *http.Client
}

func New(relayURL, apiKey, model string) *Client {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Client{
		RelayURL: relayURL,
		APIKey:   apiKey,
		Model:    model,
		httpDo: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	Model            string            `json:"model"`
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single-turn prompt and returns the single text fragment at
// candidates[0].content.parts[0].text.
func (c *Client) Generate(ctx context.Context, prompt string, expectJSON bool) (string, error) {
	req := generateRequest{
		Model:    c.Model,
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	if expectJSON {
		req.GenerationConfig = &generationConfig{ResponseMIMEType: "application/json"}
	}
	return c.invoke(ctx, req)
}

// GenerateJSON requests a JSON payload and unmarshals it into out.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, out any) error {
	text, err := c.Generate(ctx, prompt, true)
	if err != nil {
		return err
	}
	cleaned := StripFences(text)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &llm.ParseError{Raw: text, Cause: err}
	}
	return nil
}

// ExtractText asks the model to return the visible text of an image verbatim,
// in the caller's locale. Used for job offers supplied as screenshots.
func (c *Client) ExtractText(ctx context.Context, image []byte, mimeType string, loc locale.Locale) (string, error) {
	lang := "English"
	if loc.Spanish() {
		lang = "Spanish"
	}
	instruction := fmt.Sprintf(
		"Extract all visible text from this image, especially the job description. Return the plain text. Language for extraction: %s.",
		lang,
	)
	req := generateRequest{
		Model: c.Model,
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: instruction},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}
	return c.invoke(ctx, req)
}

func (c *Client) invoke(ctx context.Context, req generateRequest) (string, error) {
	if c.RelayURL == "" {
		return "", errors.New("gemini relay url is empty")
	}
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.RelayURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &llm.GatewayError{Status: resp.StatusCode, Body: string(body)}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &llm.MalformedResponseError{Detail: err.Error()}
	}
	// The relay may forward an upstream error object inside a 200 reply.
	if out.Error != nil {
		return "", &llm.UpstreamError{Code: out.Error.Code, Message: out.Error.Message}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", &llm.MalformedResponseError{Detail: "no candidates[0].content.parts[0].text in response"}
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// StripFences removes a surrounding markdown code fence (```json ... ```)
// that models occasionally wrap JSON replies in.
func StripFences(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
