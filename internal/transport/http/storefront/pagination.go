package storefront

import (
	"fmt"
	"net/http"
	"strconv"
)

// parsePage reads the "page" query parameter. Missing means page 1; the
// application layer clamps out-of-range pages, so only non-numeric input is
// rejected here.
func parsePage(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid page %q", raw)
	}
	return page, nil
}
