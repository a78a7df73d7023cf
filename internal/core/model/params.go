package model

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/oapi-codegen/runtime/types"
)

// minApodDate is the first picture the archive has (the API's launch date).
var minApodDate = NewDate(1995, 6, 16)

// ApodParams is a finalized, validated query for the APOD endpoint.
// At most one selection is populated: a single date, a start/end pair,
// or a count; all empty means "today". Build one with NewParamsBuilder.
type ApodParams struct {
	Date      *types.Date `json:"date,omitempty"`
	StartDate *types.Date `json:"start_date,omitempty"`
	EndDate   *types.Date `json:"end_date,omitempty"`
	Count     *uint8      `json:"count,omitempty"`
	Thumbs    bool        `json:"thumbs"`
}

// Values serializes the params for the query string. Optional fields are
// emitted only when present; thumbs is always emitted.
func (p ApodParams) Values() url.Values {
	v := url.Values{}
	if p.Date != nil {
		v.Set("date", FormatDate(*p.Date))
	}
	if p.StartDate != nil {
		v.Set("start_date", FormatDate(*p.StartDate))
	}
	if p.EndDate != nil {
		v.Set("end_date", FormatDate(*p.EndDate))
	}
	if p.Count != nil {
		v.Set("count", strconv.Itoa(int(*p.Count)))
	}
	v.Set("thumbs", strconv.FormatBool(p.Thumbs))
	return v
}

type selectionKind int

const (
	selNone selectionKind = iota
	selCount
	selDate
	selRange
)

// ParamsBuilder accumulates a query before validation. The selection mode
// is a single tagged value, so Count/Date/DateRange cannot coexist: each
// setter replaces whatever mode was set before (last call wins).
// A builder is for one Build call; do not reuse it afterwards.
type ParamsBuilder struct {
	thumbs bool
	sel    selectionKind
	count  uint8
	date   types.Date
	start  types.Date
	end    types.Date
}

func NewParamsBuilder() *ParamsBuilder {
	return &ParamsBuilder{}
}

// Thumbs asks the API for video thumbnail URLs. Independent of the
// selection mode.
func (b *ParamsBuilder) Thumbs(thumbs bool) *ParamsBuilder {
	b.thumbs = thumbs
	return b
}

// Count selects n random entries. No bound beyond uint8; the service
// rejects absurd values itself.
func (b *ParamsBuilder) Count(n uint8) *ParamsBuilder {
	b.sel = selCount
	b.count = n
	return b
}

// Date selects the entry for a single calendar date.
func (b *ParamsBuilder) Date(d types.Date) *ParamsBuilder {
	b.sel = selDate
	b.date = d
	return b
}

// DateRange selects every entry between start and end inclusive.
func (b *ParamsBuilder) DateRange(start, end types.Date) *ParamsBuilder {
	b.sel = selRange
	b.start = start
	b.end = end
	return b
}

// Build validates the accumulated query and produces the final params.
// With no selection set, it defaults to today's entry. The upper date
// bound is today as of the Build call, not builder creation.
func (b *ParamsBuilder) Build() (ApodParams, error) {
	p := ApodParams{Thumbs: b.thumbs}

	switch b.sel {
	case selCount:
		c := b.count
		p.Count = &c
	case selDate:
		if b.date.Before(minApodDate.Time) || b.date.After(Today().Time) {
			return ApodParams{}, fmt.Errorf("%w: Date must be between Jun 16, 1995 and Dec 12, 2025.", ErrValidation)
		}
		d := b.date
		p.Date = &d
	case selRange:
		if b.start.After(b.end.Time) {
			return ApodParams{}, fmt.Errorf("%w: Start date cannot be greater than end date", ErrValidation)
		}
		start, end := b.start, b.end
		p.StartDate = &start
		p.EndDate = &end
	default:
		today := Today()
		p.Date = &today
	}

	return p, nil
}
