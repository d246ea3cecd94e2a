package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sufield/family/internal/domain"
	"github.com/sufield/family/internal/ports"
)

// maxBodyBytes bounds POST /sessions request bodies
const maxBodyBytes = 64 << 10

type variantsResponse struct {
	Variants []string `json:"variants"`
}

type batchRequest struct {
	Variants []string `json:"variants"`
}

type batchResponse struct {
	Results []domain.SessionResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	service  ports.SessionService
	provider ports.FactoryProvider
	logger   *zap.Logger
}

// NewRouter builds the chi router serving the session API.
func NewRouter(service ports.SessionService, provider ports.FactoryProvider, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handlers{service: service, provider: provider, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)
	r.Get("/variants", h.listVariants)
	r.Get("/sessions/{variant}", h.runSession)
	r.Post("/sessions", h.runBatch)
	return r
}

func (h *handlers) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		h.logger.Warn("write error", zap.Error(err))
	}
}

func (h *handlers) listVariants(w http.ResponseWriter, _ *http.Request) {
	wired := h.provider.Variants()
	names := make([]string, 0, len(wired))
	for _, v := range wired {
		names = append(names, v.String())
	}
	h.writeJSON(w, http.StatusOK, variantsResponse{Variants: names})
}

func (h *handlers) runSession(w http.ResponseWriter, r *http.Request) {
	v, err := domain.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.service.Run(r.Context(), v)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handlers) runBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	variants, err := domain.ParseVariants(req.Variants)
	if err != nil {
		h.writeError(w, err)
		return
	}

	results, err := h.service.RunAll(r.Context(), variants)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidVariant), errors.Is(err, domain.ErrNoVariants):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownVariant):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("session request failed", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write error", zap.Error(err))
	}
}
