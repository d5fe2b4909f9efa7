package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hiremind/backend/pkg/llm"
	"github.com/hiremind/backend/pkg/locale"
)

// userID reads the authenticated user id set by the JWT middleware.
func userID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("missing or invalid user id in token")
	}
	return id, nil
}

// localeFrom resolves the request language: explicit ?lang= wins, then the
// Accept-Language header, then the default.
func localeFrom(c *fiber.Ctx) locale.Locale {
	if q := c.Query("lang"); q != "" {
		return locale.Match(q)
	}
	return locale.Match(c.Get(fiber.HeaderAcceptLanguage))
}

// gatewayStatus maps model-gateway failures to an HTTP status. Anything that
// went wrong on the far side of the relay is a 502; everything else stays 500.
func gatewayStatus(err error) int {
	var ge *llm.GatewayError
	var ue *llm.UpstreamError
	var me *llm.MalformedResponseError
	var pe *llm.ParseError
	if errors.As(err, &ge) || errors.As(err, &ue) || errors.As(err, &me) || errors.As(err, &pe) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
