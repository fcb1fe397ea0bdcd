package api

import (
	"net/http"

	"github.com/pipecraft/platform-shell/internal/pkg/httputil"
)

// HandleSEOPages is a placeholder for the SEO pages listing. The catalog has
// no backend yet; the response keeps the contract stable so the frontend can
// build against it, with _meta.implemented flagging the gap.
//
//	GET /api/seo/pages
func (h *Handlers) HandleSEOPages(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]interface{}{
		"pages": []interface{}{},
		"pagination": map[string]interface{}{
			"page":       1,
			"perPage":    20,
			"total":      0,
			"totalPages": 0,
		},
		"_meta": map[string]interface{}{
			"implemented": false,
		},
	})
}
