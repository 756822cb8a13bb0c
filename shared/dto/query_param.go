package dto

import (
	"net/http"
	"strconv"
	"todolist/shared/constant"
)

// QueryParams selects a page of a listing. A zero Limit means everything.
type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1"`
}

// FromRequest reads page and limit from the query string. Values that are
// not positive integers are ignored. A page without a limit falls back to
// the default limit.
func (q *QueryParams) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.Page = positive(query.Get(constant.RequestParamPage))
	q.Limit = positive(query.Get(constant.RequestParamLimit))

	if q.Page > 0 && q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Paginated reports whether the listing has to be cut.
func (q QueryParams) Paginated() bool {
	return q.Limit > 0
}

func (q QueryParams) Offset() int {
	if q.Page <= 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positive(raw string) int {
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0
	}

	return value
}
