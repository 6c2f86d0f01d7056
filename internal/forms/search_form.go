package forms

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventSearchForm struct {
	SearchQuery string
	Category    string
	DateFrom    string
	DateTo      string
}

// EventSearch is the parsed filter set for the event listing. Zero-valued
// members leave the matching predicate untouched.
type EventSearch struct {
	Query      string
	CategoryID uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
}

func (f EventSearchForm) Validate() (EventSearch, Errors) {
	errs := Errors{}
	search := EventSearch{Query: strings.TrimSpace(f.SearchQuery)}

	if f.Category != "" {
		id, err := uuid.Parse(f.Category)
		if err != nil {
			errs.Add("category", invalidChoiceMessage)
		} else {
			search.CategoryID = id
		}
	}

	if f.DateFrom != "" {
		from, err := time.ParseInLocation(DateLayout, f.DateFrom, time.UTC)
		if err != nil {
			errs.Add("date_from", invalidDateMessage)
		} else {
			search.DateFrom = &from
		}
	}

	if f.DateTo != "" {
		to, err := time.ParseInLocation(DateLayout, f.DateTo, time.UTC)
		if err != nil {
			errs.Add("date_to", invalidDateMessage)
		} else {
			search.DateTo = &to
		}
	}

	if search.DateFrom != nil && search.DateTo != nil && search.DateFrom.After(*search.DateTo) {
		errs.Add("date_from", "Start date cannot be after end date.")
	}

	return search, errs
}
