package model

import (
	"errors"
	"fmt"

	"github.com/oapi-codegen/runtime/types"
)

// All core models live here together for simplicity.

var (
	ErrValidation = errors.New("validation")
	ErrUpstream   = errors.New("upstream")
	ErrDecode     = errors.New("decode")
)

// Apod is one picture-of-the-day entry as returned by the API.
// Values are immutable once decoded; the date is the only identity
// (the API guarantees one entry per calendar date).
type Apod struct {
	Copyright      *string    `json:"copyright,omitempty"`
	Date           types.Date `json:"date"`
	Explanation    string     `json:"explanation"`
	HDURL          *string    `json:"hdurl,omitempty"`
	MediaType      string     `json:"media_type"`
	ServiceVersion string     `json:"service_version"`
	Title          string     `json:"title"`
	URL            string     `json:"url"`
	ThumbnailURL   *string    `json:"thumbnail_url,omitempty"`
}

// APIError is a logical failure reported by the remote service, either
// through a non-2xx status or through an error-shaped body on a 200.
type APIError struct {
	Code           int    `json:"code"`
	Msg            string `json:"msg"`
	ServiceVersion string `json:"service_version"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http code %d: %s", e.Code, e.Msg)
}

// Is lets callers match with errors.Is(err, ErrUpstream) without
// losing the typed payload.
func (e *APIError) Is(target error) bool {
	return target == ErrUpstream
}
