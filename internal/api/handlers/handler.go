package handlers

import (
	"net/http"
	"strings"
)

const (
	viewHeader    = "X-View-ID"
	originProduct = "product"
	originCart    = "cart"
	originCard    = "card"
)

// viewOrigin names the view that made a change so it can skip its own notification.
func viewOrigin(r *http.Request, fallback string) string {
	if v := strings.TrimSpace(r.Header.Get(viewHeader)); v != "" {
		return v
	}

	return fallback
}
