package checkers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// RelayChecker verifies that the Gemini relay endpoint is reachable.
// Any HTTP response counts as alive; only transport failures are reported.
type RelayChecker struct {
	url   string
	httpc *http.Client
}

func NewRelayChecker(url string) *RelayChecker {
	return &RelayChecker{url: url, httpc: &http.Client{Timeout: 3 * time.Second}}
}

func (c *RelayChecker) Name() string { return "gemini-relay" }

func (c *RelayChecker) Check(ctx context.Context) error {
	if c.url == "" {
		return fmt.Errorf("relay url is not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("relay unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}
