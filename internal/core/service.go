package core

import (
	"apod-manager/internal/core/model"
	"context"
	"fmt"

	"github.com/oapi-codegen/runtime/types"
)

// ApodFetcher is the outbound client the service depends on. One call,
// one request; retry and caching policy do not live here.
type ApodFetcher interface {
	Get(ctx context.Context, params model.ApodParams) ([]model.Apod, error)
}

type Service struct {
	Apod   ApodFetcher
	Thumbs bool
}

func NewService(apod ApodFetcher, thumbs bool) *Service {
	return &Service{Apod: apod, Thumbs: thumbs}
}

// Today fetches the current entry.
func (s *Service) Today(ctx context.Context) (model.Apod, error) {
	params, err := model.NewParamsBuilder().Thumbs(s.Thumbs).Build()
	if err != nil {
		return model.Apod{}, err
	}
	return s.one(ctx, params)
}

// ByDate fetches the entry for a single past date.
func (s *Service) ByDate(ctx context.Context, d types.Date) (model.Apod, error) {
	params, err := model.NewParamsBuilder().Thumbs(s.Thumbs).Date(d).Build()
	if err != nil {
		return model.Apod{}, err
	}
	return s.one(ctx, params)
}

// Range fetches every entry between start and end inclusive.
func (s *Service) Range(ctx context.Context, start, end types.Date) ([]model.Apod, error) {
	params, err := model.NewParamsBuilder().Thumbs(s.Thumbs).DateRange(start, end).Build()
	if err != nil {
		return nil, err
	}
	return s.Apod.Get(ctx, params)
}

// Random fetches n randomly chosen entries.
func (s *Service) Random(ctx context.Context, n uint8) ([]model.Apod, error) {
	params, err := model.NewParamsBuilder().Thumbs(s.Thumbs).Count(n).Build()
	if err != nil {
		return nil, err
	}
	return s.Apod.Get(ctx, params)
}

// Get runs an already-built query unchanged.
func (s *Service) Get(ctx context.Context, params model.ApodParams) ([]model.Apod, error) {
	return s.Apod.Get(ctx, params)
}

func (s *Service) one(ctx context.Context, params model.ApodParams) (model.Apod, error) {
	apods, err := s.Apod.Get(ctx, params)
	if err != nil {
		return model.Apod{}, err
	}
	if len(apods) == 0 {
		return model.Apod{}, fmt.Errorf("%w: empty response for a single-date query", model.ErrDecode)
	}
	return apods[0], nil
}
