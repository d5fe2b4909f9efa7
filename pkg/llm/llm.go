package llm

import (
	"context"
	"fmt"

	"github.com/hiremind/backend/pkg/locale"
)

// Gateway is a minimal abstraction for the generative model used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type Gateway interface {
	// Generate sends a single-turn text prompt and returns the model reply.
	// When expectJSON is set the response is requested as a JSON payload;
	// callers still unmarshal it themselves (see GenerateJSON).
	Generate(ctx context.Context, prompt string, expectJSON bool) (string, error)
	// GenerateJSON sends the prompt with a JSON response requested and
	// unmarshals the reply into out. Malformed output yields *ParseError;
	// there is no repair or retry.
	GenerateJSON(ctx context.Context, prompt string, out any) error
	// ExtractText performs verbatim text extraction from an inlined image
	// (OCR for job-offer screenshots). The extraction language follows loc.
	ExtractText(ctx context.Context, image []byte, mimeType string, loc locale.Locale) (string, error)
}

// GatewayError is a non-success transport response from the relay.
type GatewayError struct {
	Status int
	Body   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway http %d: %s", e.Status, e.Body)
}

// UpstreamError is a 200 transport response that wraps an error object from
// the upstream model service.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("upstream error %d: %s", e.Code, e.Message)
	}
	return "upstream error: " + e.Message
}

// MalformedResponseError means the fixed response path
// candidates[0].content.parts[0].text was absent from a well-formed reply.
type MalformedResponseError struct {
	Detail string
}

func (e *MalformedResponseError) Error() string {
	return "malformed model response: " + e.Detail
}

// ParseError means a generation requested as JSON did not parse.
type ParseError struct {
	Raw   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model returned invalid JSON: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
