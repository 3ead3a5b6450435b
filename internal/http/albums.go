package http

import (
	"errors"
	cl "music-catalog/pkg/catalog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	"gopkg.in/guregu/null.v3"
)

// AddAlbum adds an album, or replaces the release year of an existing one.
func (h *Handler) AddAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req, err := parseAddAlbumRequest(r)
	if err != nil {
		h.writeBadRequest(w, r, "AddAlbum", err)
		return
	}

	res, err := h.CatalogStore.AddAlbum(ctx, req)
	if err != nil {
		h.writeStoreError(w, r, "AddAlbum", err, http.StatusBadRequest)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusCreated)
}

func parseAddAlbumRequest(r *http.Request) (cl.AddAlbumReq, error) {
	var req cl.AddAlbumReq
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		return req, err
	}
	if req.Name == "" {
		return req, errors.New("[parseAddAlbumRequest] album name must be provided")
	}
	return req, nil
}

// ListAlbums gets the names of all the albums, optionally only those released
// in the year given by the "year" query parameter.
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req, err := parseListAlbumsRequest(r)
	if err != nil {
		h.writeBadRequest(w, r, "ListAlbums", err)
		return
	}

	res, err := h.CatalogStore.ListAlbums(ctx, req)
	if err != nil {
		h.writeStoreError(w, r, "ListAlbums", err, http.StatusNotFound)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

func parseListAlbumsRequest(r *http.Request) (cl.ListAlbumsReq, error) {
	var req cl.ListAlbumsReq
	v := r.URL.Query()

	year := v.Get("year")
	if year == "" {
		return req, nil
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return req, errors.New("[parseListAlbumsRequest] year must be an integer")
	}
	req.Year = null.IntFrom(int64(y))
	return req, nil
}

// LongestAlbum gets the album whose songs add up to the longest duration.
func (h *Handler) LongestAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	res, err := h.CatalogStore.LongestAlbum(ctx)
	if err != nil {
		h.writeStoreError(w, r, "LongestAlbum", err, http.StatusNotFound)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// CountAlbumSongs gets the number of songs on the album matching the name.
func (h *Handler) CountAlbumSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	name, err := albumNameFromPath(r)
	if err != nil {
		h.writeBadRequest(w, r, "CountAlbumSongs", err)
		return
	}

	res, err := h.CatalogStore.CountSongs(ctx, cl.CountSongsReq{AlbumName: null.StringFrom(name)})
	if err != nil {
		h.writeStoreError(w, r, "CountAlbumSongs", err, http.StatusNotFound)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// AverageDuration gets the average song duration of the album matching the
// name.
func (h *Handler) AverageDuration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	name, err := albumNameFromPath(r)
	if err != nil {
		h.writeBadRequest(w, r, "AverageDuration", err)
		return
	}

	res, err := h.CatalogStore.AverageDuration(ctx, cl.AverageDurationReq{AlbumName: name})
	if err != nil {
		h.writeStoreError(w, r, "AverageDuration", err, http.StatusNotFound)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

func albumNameFromPath(r *http.Request) (string, error) {
	name := mux.Vars(r)["name"]
	if name == "-" || name == "" {
		return "", errors.New("[albumNameFromPath] album name must be provided")
	}
	return name, nil
}
