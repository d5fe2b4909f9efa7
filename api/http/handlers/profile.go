package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hiremind/backend/api/http/presenter"
	"github.com/hiremind/backend/pkg/profile"
	"github.com/hiremind/backend/pkg/render"
)

type ProfileHandler struct {
	useCase profile.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewProfileHandler(useCase profile.UseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase, maxBytes: 15 << 20} // 15MB
}

// Import accepts a résumé file (PDF, DOCX or plain text), structures it via
// the model gateway and stores the document under (user, locale).
// @Summary Import résumé into a structured profile
// @Tags    profile
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "résumé file (pdf, docx or txt)"
// @Param   lang query string false "profile language (en or es)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /profile/import [post]
func (h *ProfileHandler) Import(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or txt)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" && ext != ".txt" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf, docx and txt are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.useCase.ImportResume(c.Context(), uid, localeFrom(c), fh.Filename, data)
	if err != nil {
		if err == profile.ErrEmptyResume {
			return presenter.Error(c, http.StatusBadRequest, "empty resume content")
		}
		return presenter.Error(c, gatewayStatus(err), fmt.Sprintf("import failed: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, result)
}

// Get returns the stored profile for the requested language.
// A user without a document under this language gets {"profile": null}.
// @Summary Get profile
// @Tags    profile
// @Produce json
// @Param   lang query string false "profile language (en or es)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	p, err := h.useCase.Get(c.Context(), uid, localeFrom(c))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"profile": p})
}

// Save replaces the stored document wholesale with the posted JSON.
// @Summary Save profile document
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   lang query string false "profile language (en or es)"
// @Param   input body map[string]any true "profile document"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	p, err := h.useCase.Save(c.Context(), uid, localeFrom(c), c.Body())
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"profile": p})
}

type updateRequest struct {
	Text string `json:"text"`
}

// Update folds free-form update text into the stored document via the model.
// @Summary Merge an update into the profile
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   lang query string false "profile language (en or es)"
// @Param   input body updateRequest true "update text"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /profile/update [post]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Text) == "" {
		return presenter.Error(c, http.StatusBadRequest, "update text is required")
	}
	p, err := h.useCase.MergeUpdate(c.Context(), uid, localeFrom(c), req.Text)
	if err != nil {
		if err == profile.ErrNoProfile {
			return presenter.Error(c, http.StatusNotFound, err.Error())
		}
		return presenter.Error(c, gatewayStatus(err), fmt.Sprintf("update failed: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"profile": p})
}

// View renders the profile as an HTML fragment. A missing document renders
// the localized "profile not found" state, not an error.
// @Summary Rendered profile view
// @Tags    profile
// @Produce html
// @Param   lang query string false "profile language (en or es)"
// @Security BearerAuth
// @Success 200 {string} string
// @Router  /profile/view [get]
func (h *ProfileHandler) View(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	loc := localeFrom(c)
	p, err := h.useCase.Get(c.Context(), uid, loc)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.HTML(c, http.StatusOK, render.Profile(p, loc))
}

// Jobs returns model-suggested roles for the stored profile.
// @Summary Job recommendations
// @Tags    profile
// @Produce json
// @Param   lang query string false "profile language (en or es)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /profile/jobs [get]
func (h *ProfileHandler) Jobs(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	recs, err := h.useCase.JobRecommendations(c.Context(), uid, localeFrom(c))
	if err != nil {
		if err == profile.ErrNoProfile {
			return presenter.Error(c, http.StatusNotFound, err.Error())
		}
		return presenter.Error(c, gatewayStatus(err), "failed to fetch job recommendations")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"recommendations": recs})
}

const watchHeartbeat = 15 * time.Second

// Watch streams the profile document over SSE: the current state first, then
// one event per save under (user, locale). Intermediate states may be skipped
// for a slow consumer; the last event always reflects the latest save.
// @Summary Watch profile changes (SSE)
// @Tags    profile
// @Produce text/event-stream
// @Param   lang query string false "profile language (en or es)"
// @Security BearerAuth
// @Success 200 {string} string
// @Router  /profile/watch [get]
func (h *ProfileHandler) Watch(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	current, sub, err := h.useCase.Subscribe(c.Context(), uid, localeFrom(c))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to subscribe")
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer sub.Close()
		if err := writeProfileEvent(w, current); err != nil {
			return
		}
		ticker := time.NewTicker(watchHeartbeat)
		defer ticker.Stop()
		for {
			select {
			case p, ok := <-sub.C:
				if !ok {
					return
				}
				if err := writeProfileEvent(w, &p); err != nil {
					return
				}
			case <-ticker.C:
				// Heartbeat doubles as the disconnect probe: the write fails
				// once the client is gone.
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
	return nil
}

func writeProfileEvent(w *bufio.Writer, p *profile.Profile) error {
	payload, err := json.Marshal(p) // nil marshals to "null"
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: profile\ndata: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}
