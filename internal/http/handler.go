package http

import (
	"music-catalog/internal"
	cl "music-catalog/pkg/catalog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
)

type Handler struct {
	Version      string
	AppName      string
	router       *mux.Router
	Logger       tools.Logger
	CatalogStore internal.CatalogStore
}

// writeStoreError logs a failed store call and writes the matching error
// response. Unknown album references are answered with refCode, anything else
// is an internal server error.
func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, op string, err error, refCode int) {
	reqID := requestid.Get(r.Context())
	v := r.URL.Query()

	if errors.Cause(err) == cl.ErrInvalidReference {
		h.Logger.Warn("["+op+"] unknown album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, cl.ErrInvalidReference.Error(), refCode)
		return
	}

	h.Logger.Error("["+op+"] error calling catalog store",
		"request_id", reqID,
		"details", err.Error(),
	)
	_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusInternalServerError)
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.Logger.Error("["+op+"] error parsing request",
		"request_id", requestid.Get(r.Context()),
		"details", err.Error())
	_ = httputils.WriteJSONError(w, r.URL.Query(), err.Error(), http.StatusBadRequest)
}
