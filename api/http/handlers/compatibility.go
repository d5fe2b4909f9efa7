package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hiremind/backend/api/http/presenter"
	"github.com/hiremind/backend/pkg/match"
	"github.com/hiremind/backend/pkg/render"
)

type CompatibilityHandler struct {
	useCase match.UseCase
	// Limit uploaded image size read into memory (bytes)
	maxBytes int64
}

func NewCompatibilityHandler(useCase match.UseCase) *CompatibilityHandler {
	return &CompatibilityHandler{useCase: useCase, maxBytes: 15 << 20} // 15MB
}

// Verify scores a job offer against the stored profile. The offer comes as
// pasted text or as an uploaded screenshot (OCR'd via the gateway); the
// verdict, tailored CV and improvement plan land in the history.
// @Summary Check offer compatibility
// @Tags    offers
// @Accept  multipart/form-data
// @Produce json
// @Param   offerText formData string false "pasted job offer text"
// @Param   image formData file false "offer screenshot (png or jpeg)"
// @Param   lang query string false "language (en or es)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /offers/verify [post]
func (h *CompatibilityHandler) Verify(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}

	in := match.Input{OfferText: c.FormValue("offerText")}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		mime := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(mime, "image/") {
			return presenter.Error(c, http.StatusBadRequest, "offer attachment must be an image")
		}
		file, err := fh.Open()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded image")
		}
		defer file.Close()
		data, err := readAtMost(file, h.maxBytes)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		in.Image = data
		in.ImageMIME = mime
	}

	entry, err := h.useCase.Verify(c.Context(), uid, localeFrom(c), in)
	if err != nil {
		switch err {
		case match.ErrNoOfferInput:
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case match.ErrNoProfile:
			return presenter.Error(c, http.StatusNotFound, err.Error())
		default:
			return presenter.Error(c, gatewayStatus(err), fmt.Sprintf("verification failed: %v", err))
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"entry": entry,
		"html":  render.Result(entry),
	})
}

// History lists recent checks, newest first.
// @Summary Search history
// @Tags    offers
// @Produce json
// @Param   limit query int false "max entries (default 5, cap 50)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /history [get]
func (h *CompatibilityHandler) History(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	entries, err := h.useCase.History(c.Context(), uid, limit)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load history")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"history": entries})
}

// Replay returns a stored check verbatim, rendered through the same pipeline
// as a fresh one. No gateway call, no new entry.
// @Summary Replay a stored check
// @Tags    offers
// @Produce json
// @Param   id path string true "entry id"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /history/{id} [get]
func (h *CompatibilityHandler) Replay(c *fiber.Ctx) error {
	entry, ok := h.entryFromPath(c)
	if !ok {
		return nil
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"entry": entry,
		"html":  render.Result(entry),
	})
}

// CV renders the tailored CV of a stored check as HTML.
// @Summary Tailored CV view
// @Tags    offers
// @Produce html
// @Param   id path string true "entry id"
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /history/{id}/cv [get]
func (h *CompatibilityHandler) CV(c *fiber.Ctx) error {
	entry, ok := h.entryFromPath(c)
	if !ok {
		return nil
	}
	return presenter.HTML(c, http.StatusOK, render.CV(entry.CV, entry.Locale))
}

// CVDoc downloads the tailored CV as a Word document.
// @Summary Tailored CV download (.doc)
// @Tags    offers
// @Produce application/vnd.ms-word
// @Param   id path string true "entry id"
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /history/{id}/cv.doc [get]
func (h *CompatibilityHandler) CVDoc(c *fiber.Ctx) error {
	entry, ok := h.entryFromPath(c)
	if !ok {
		return nil
	}
	body := render.WordDocument(render.CV(entry.CV, entry.Locale))
	c.Set(fiber.HeaderContentType, "application/vnd.ms-word")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", render.DocFilename(entry.Analysis.OfferTitle)))
	return c.Status(http.StatusOK).SendString(body)
}

// entryFromPath loads the entry named by :id for the authenticated user.
// When it reports false, the error response has already been written.
func (h *CompatibilityHandler) entryFromPath(c *fiber.Ctx) (match.Entry, bool) {
	uid, err := userID(c)
	if err != nil {
		_ = presenter.Error(c, http.StatusUnauthorized, err.Error())
		return match.Entry{}, false
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, "invalid entry id")
		return match.Entry{}, false
	}
	entry, err := h.useCase.Replay(c.Context(), uid, id)
	if err != nil {
		if err == match.ErrNotFound {
			_ = presenter.Error(c, http.StatusNotFound, "analysis not found")
		} else {
			_ = presenter.Error(c, http.StatusInternalServerError, "failed to load entry")
		}
		return match.Entry{}, false
	}
	return entry, true
}
