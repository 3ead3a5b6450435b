package http

import (
	"errors"
	"math"
	cl "music-catalog/pkg/catalog"
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
)

// AddSong adds a song, optionally on an existing album.
func (h *Handler) AddSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req, err := parseAddSongRequest(r)
	if err != nil {
		h.writeBadRequest(w, r, "AddSong", err)
		return
	}

	res, err := h.CatalogStore.AddSong(ctx, req)
	if err != nil {
		h.writeStoreError(w, r, "AddSong", err, http.StatusBadRequest)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusCreated)
}

func parseAddSongRequest(r *http.Request) (cl.AddSongReq, error) {
	var req cl.AddSongReq
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		return req, err
	}
	if req.Name == "" {
		return req, errors.New("[parseAddSongRequest] song name must be provided")
	}
	if math.IsNaN(req.Duration) || math.IsInf(req.Duration, 0) || req.Duration < 0 {
		return req, errors.New("[parseAddSongRequest] duration must be a non-negative number of seconds")
	}
	if req.AlbumName.Valid && req.AlbumName.String == "" {
		return req, errors.New("[parseAddSongRequest] album name must not be empty")
	}
	return req, nil
}

// ListSongs gets the names of all the songs in ascending order.
func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	res, err := h.CatalogStore.ListSongs(ctx)
	if err != nil {
		h.writeStoreError(w, r, "ListSongs", err, http.StatusNotFound)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// LongestSong gets the song with the longest duration.
func (h *Handler) LongestSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	res, err := h.CatalogStore.LongestSong(ctx)
	if err != nil {
		h.writeStoreError(w, r, "LongestSong", err, http.StatusNotFound)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// CountUnassignedSongs gets the number of songs that are not on any album.
func (h *Handler) CountUnassignedSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	res, err := h.CatalogStore.CountSongs(ctx, cl.CountSongsReq{})
	if err != nil {
		h.writeStoreError(w, r, "CountUnassignedSongs", err, http.StatusNotFound)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}
