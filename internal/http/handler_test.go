package http

import (
	"music-catalog/internal/memstore"
	cl "music-catalog/pkg/catalog"
	"net/http"
	"testing"

	"gopkg.in/guregu/null.v3"
)

func TestCatalogRoundTrip(t *testing.T) {
	store := memstore.New()

	for _, body := range []string{
		`{"name": "Testify", "year": 1997}`,
		`{"name": "Balance", "year": 2003}`,
	} {
		if wr := serve(t, store, "POST", "/v1/album", body); wr.Code != http.StatusCreated {
			t.Fatalf("unable to add album %s: %s", body, wr.Body.String())
		}
	}
	for _, body := range []string{
		`{"name": "Testify", "album": "Testify", "duration": 213}`,
		`{"name": "Break down", "album": "Testify", "duration": 278}`,
		`{"name": "Warning", "duration": 220}`,
	} {
		if wr := serve(t, store, "POST", "/v1/song", body); wr.Code != http.StatusCreated {
			t.Fatalf("unable to add song %s: %s", body, wr.Body.String())
		}
	}

	wr := serve(t, store, "POST", "/v1/song", `{"name": "Lost", "album": "Nope", "duration": 1}`)
	checkResponse(t, wr, http.StatusBadRequest, jsonErr("invalid album name"))

	table := []struct {
		label   string
		url     string
		expCode int
		expRes  interface{}
	}{
		{"albums", "/v1/albums", http.StatusOK, cl.ListAlbumsRes{Albums: []string{"Balance", "Testify"}}},
		{"albums in year", "/v1/albums?year=2003", http.StatusOK, cl.ListAlbumsRes{Albums: []string{"Balance"}}},
		{"songs", "/v1/songs", http.StatusOK, cl.ListSongsRes{Songs: []string{"Break down", "Testify", "Warning"}}},
		{"count songs", "/v1/album/Testify/songs/count", http.StatusOK, cl.CountSongsRes{Count: 2}},
		{"count unknown album", "/v1/album/Nope/songs/count", http.StatusNotFound, jsonErr("invalid album name")},
		{"count unassigned", "/v1/songs/unassigned/count", http.StatusOK, cl.CountSongsRes{Count: 1}},
		{"average", "/v1/album/Testify/duration/average", http.StatusOK, cl.AverageDurationRes{AverageDuration: null.FloatFrom(245.5)}},
		{"average empty album", "/v1/album/Balance/duration/average", http.StatusOK, cl.AverageDurationRes{}},
		{"average unknown album", "/v1/album/Nope/duration/average", http.StatusNotFound, jsonErr("invalid album name")},
		{"longest song", "/v1/songs/longest", http.StatusOK, cl.LongestSongRes{Song: null.StringFrom("Break down")}},
		{"longest album", "/v1/albums/longest", http.StatusOK, cl.LongestAlbumRes{Album: null.StringFrom("Testify")}},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			wr := serve(t, store, "GET", ts.url, "")
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}
