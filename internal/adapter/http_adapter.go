package adapter

import (
	"apod-manager/internal/core/model"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ApodService is what the HTTP layer needs from the core.
type ApodService interface {
	Get(ctx context.Context, params model.ApodParams) ([]model.Apod, error)
}

type Handler struct {
	Svc ApodService
	log *slog.Logger
}

func NewHandler(svc ApodService, logger *slog.Logger) *Handler {
	return &Handler{Svc: svc, log: logger}
}

// Routes mounts the API onto a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/api/v1/apod", h.GetApod)
}

type httpError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	e := httpError{}
	e.Error.Code = code
	e.Error.Message = msg
	writeJSON(w, status, e)
}

// GetApod serves GET /api/v1/apod. Selection comes from the query:
// date=YYYY-MM-DD, start_date=&end_date=, or count=N; thumbs=true asks
// for video thumbnails. With no selection the API returns today's entry.
func (h *Handler) GetApod(w http.ResponseWriter, r *http.Request) {
	params, err := paramsFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	apods, err := h.Svc.Get(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apods)
}

func paramsFromQuery(r *http.Request) (model.ApodParams, error) {
	q := r.URL.Query()
	b := model.NewParamsBuilder()

	if v := q.Get("thumbs"); v != "" {
		thumbs, err := strconv.ParseBool(v)
		if err != nil {
			return model.ApodParams{}, errors.New("thumbs must be a boolean")
		}
		b.Thumbs(thumbs)
	}

	switch {
	case q.Get("date") != "":
		d, err := model.ParseDate(q.Get("date"))
		if err != nil {
			return model.ApodParams{}, errors.New("date must be YYYY-MM-DD")
		}
		b.Date(d)
	case q.Get("start_date") != "" || q.Get("end_date") != "":
		start, err := model.ParseDate(q.Get("start_date"))
		if err != nil {
			return model.ApodParams{}, errors.New("start_date must be YYYY-MM-DD")
		}
		end, err := model.ParseDate(q.Get("end_date"))
		if err != nil {
			return model.ApodParams{}, errors.New("end_date must be YYYY-MM-DD")
		}
		b.DateRange(start, end)
	case q.Get("count") != "":
		n, err := strconv.ParseUint(q.Get("count"), 10, 8)
		if err != nil {
			return model.ApodParams{}, errors.New("count must be an integer between 0 and 255")
		}
		b.Count(uint8(n))
	}

	return b.Build()
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *model.APIError
	switch {
	case errors.As(err, &apiErr):
		h.log.WarnContext(r.Context(), "upstream error", "code", apiErr.Code, "msg", apiErr.Msg)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", apiErr.Error())
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
	case errors.Is(err, model.ErrDecode):
		h.log.ErrorContext(r.Context(), "decode error", "err", err)
		writeError(w, http.StatusBadGateway, "BAD_UPSTREAM_RESPONSE", "upstream response could not be decoded")
	default:
		h.log.ErrorContext(r.Context(), "request failed", "err", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "could not reach the APOD service")
	}
}
