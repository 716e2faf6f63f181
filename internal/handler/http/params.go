package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// periodFromURL parses the {year}/{month} URL segments.
func periodFromURL(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}
