package adapter

import (
	"apod-manager/internal/core/model"
	"encoding/json"
	"fmt"
)

// The endpoint answers with one of three shapes and no discriminator
// field: an error object, a single entry object, or an array of entry
// objects. decodeApodBody tries them in that order and commits to the
// first structural match. Error must come before single entry: both are
// plain objects, and an error payload must never pass as a degenerate
// entry. The order is pinned by tests.
func decodeApodBody(body []byte) ([]model.Apod, error) {
	var e apiErrorPayload
	if err := json.Unmarshal(body, &e); err == nil && e.matches() {
		return nil, &model.APIError{
			Code:           *e.Code,
			Msg:            *e.Msg,
			ServiceVersion: *e.ServiceVersion,
		}
	}

	var one apodPayload
	if err := json.Unmarshal(body, &one); err == nil && one.matches() {
		apod, err := one.toModel()
		if err != nil {
			return nil, err
		}
		return []model.Apod{apod}, nil
	}

	var many []apodPayload
	// A JSON null also unmarshals into a slice (as nil); only a real
	// array counts as a match.
	if err := json.Unmarshal(body, &many); err == nil && many != nil {
		out := make([]model.Apod, 0, len(many))
		for _, p := range many {
			if !p.matches() {
				return nil, fmt.Errorf("%w: entry missing required fields", model.ErrDecode)
			}
			apod, err := p.toModel()
			if err != nil {
				return nil, err
			}
			out = append(out, apod)
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: body matches no known response shape", model.ErrDecode)
}

// apiErrorPayload mirrors the service's error object. Pointer fields let
// matches distinguish "absent" from "zero".
type apiErrorPayload struct {
	Code           *int    `json:"code"`
	Msg            *string `json:"msg"`
	ServiceVersion *string `json:"service_version"`
}

func (e apiErrorPayload) matches() bool {
	return e.Code != nil && e.Msg != nil && e.ServiceVersion != nil
}

// apodPayload is the wire form of one entry; the date stays a string
// until the shape is committed, so a malformed date is reported as a
// decode failure rather than silently trying the next shape.
type apodPayload struct {
	Copyright      *string `json:"copyright"`
	Date           *string `json:"date"`
	Explanation    *string `json:"explanation"`
	HDURL          *string `json:"hdurl"`
	MediaType      *string `json:"media_type"`
	ServiceVersion *string `json:"service_version"`
	Title          *string `json:"title"`
	URL            *string `json:"url"`
	ThumbnailURL   *string `json:"thumbnail_url"`
}

func (p apodPayload) matches() bool {
	return p.Date != nil &&
		p.Explanation != nil &&
		p.MediaType != nil &&
		p.ServiceVersion != nil &&
		p.Title != nil &&
		p.URL != nil
}

func (p apodPayload) toModel() (model.Apod, error) {
	date, err := model.ParseDate(*p.Date)
	if err != nil {
		return model.Apod{}, fmt.Errorf("%w: %v", model.ErrDecode, err)
	}
	return model.Apod{
		Copyright:      p.Copyright,
		Date:           date,
		Explanation:    *p.Explanation,
		HDURL:          p.HDURL,
		MediaType:      *p.MediaType,
		ServiceVersion: *p.ServiceVersion,
		Title:          *p.Title,
		URL:            *p.URL,
		ThumbnailURL:   p.ThumbnailURL,
	}, nil
}
