// Package translate serves the translation pass-through used by the client to
// render headlines in Hindi or English.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"newatalk/internal/handler/http/respond"
	"newatalk/internal/infra/translator"
	"newatalk/internal/observability/logging"
)

const maxBodyBytes = 16 << 10

// Request is the POST body.
type Request struct {
	Q      string `json:"q" example:"Heavy rain expected in Mumbai"`
	Target string `json:"target" example:"hi" enums:"hi,en"`
}

// Response carries the translation, or null when no backend could produce one.
type Response struct {
	TranslatedText *string `json:"translatedText"`
}

// Handler proxies translation requests to the configured backend.
type Handler struct {
	Translator translator.Translator
	Logger     *slog.Logger
}

// ServeHTTP translates q into target.
// @Summary      Translate text
// @Description  Translates up to 900 characters between Hindi and English. Upstream failures yield translatedText null with status 200.
// @Tags         translate
// @Accept       json
// @Produce      json
// @Param        body  body      Request  true  "Text and target language"
// @Success      200   {object}  Response
// @Failure      400   {object}  respond.ErrorBody
// @Router       /api/translate [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger(ctx)

	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Message(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		logger.Debug("translate body not decodable", slog.Any("error", err))
		writeResult(w, "")
		return
	}

	q := strings.TrimSpace(req.Q)
	target := strings.ToLower(strings.TrimSpace(req.Target))
	if q == "" || target == "" {
		respond.Message(w, http.StatusBadRequest, "Missing q or target")
		return
	}
	if _, err := translator.SourceFor(target); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid target: must be hi or en")
		return
	}

	if h.Translator == nil {
		writeResult(w, "")
		return
	}
	out, err := h.Translator.Translate(ctx, q, target)
	if err != nil {
		logger.Warn("translation failed",
			slog.String("target", target),
			slog.String("error", respond.SanitizeError(err)))
		out = ""
	}
	writeResult(w, out)
}

func writeResult(w http.ResponseWriter, s string) {
	var resp Response
	if s != "" {
		resp.TranslatedText = &s
	}
	w.Header().Set("Cache-Control", "no-store")
	respond.JSON(w, http.StatusOK, resp)
}

func (h Handler) logger(ctx context.Context) *slog.Logger {
	if h.Logger != nil {
		return logging.WithRequestID(ctx, h.Logger)
	}
	return logging.FromContext(ctx)
}

// Register mounts the translation route on mux.
func Register(mux *http.ServeMux, t translator.Translator, logger *slog.Logger) {
	mux.Handle("POST /api/translate", Handler{Translator: t, Logger: logger})
}
