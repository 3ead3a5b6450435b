package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	cl "music-catalog/pkg/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"
)

func newTestStore(ctx context.Context, t *testing.T) *Store {
	t.Helper()
	s := New()
	for _, a := range []cl.Album{
		{Name: "Testify", Year: 1997},
		{Name: "Balance", Year: 2003},
	} {
		if _, err := s.AddAlbum(ctx, cl.AddAlbumReq{Album: a}); err != nil {
			t.Fatalf("Unable to add album: %s", err.Error())
		}
	}
	for _, song := range []cl.Song{
		{Name: "Testify", AlbumName: null.StringFrom("Testify"), Duration: 213.0},
		{Name: "Break down", AlbumName: null.StringFrom("Testify"), Duration: 278.0},
		{Name: "Warning", Duration: 220.0},
	} {
		if _, err := s.AddSong(ctx, cl.AddSongReq{Song: song}); err != nil {
			t.Fatalf("Unable to add song: %s", err.Error())
		}
	}
	return s
}

func TestAddSong(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(ctx, t)

	song := cl.Song{Name: "Calm", AlbumName: null.StringFrom("Balance"), Duration: 180}
	res, err := s.AddSong(ctx, cl.AddSongReq{Song: song})
	if err != nil {
		t.Fatalf("unexpected error adding song: %s", err.Error())
	}
	if !cmp.Equal(res, cl.AddSongRes{Song: &song}) {
		t.Fatalf("unexpected response returned: %s", cmp.Diff(cl.AddSongRes{Song: &song}, res))
	}

	_, err = s.AddSong(ctx, cl.AddSongReq{Song: cl.Song{Name: "Lost", AlbumName: null.StringFrom("Nope")}})
	if errors.Cause(err) != cl.ErrInvalidReference {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestListAlbums(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(ctx, t)

	table := []struct {
		label  string
		req    cl.ListAlbumsReq
		expRes cl.ListAlbumsRes
	}{
		{
			label:  "should list every album sorted",
			expRes: cl.ListAlbumsRes{Albums: []string{"Balance", "Testify"}},
		},
		{
			label:  "should filter albums by year",
			req:    cl.ListAlbumsReq{Year: null.IntFrom(1997)},
			expRes: cl.ListAlbumsRes{Albums: []string{"Testify"}},
		},
		{
			label:  "should return an empty list for a year without albums",
			req:    cl.ListAlbumsReq{Year: null.IntFrom(1950)},
			expRes: cl.ListAlbumsRes{Albums: []string{}},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			res, err := s.ListAlbums(ctx, ts.req)
			if err != nil {
				t.Fatalf("unexpected error listing albums: %s", err.Error())
			}
			if !cmp.Equal(res, ts.expRes) {
				t.Fatalf("unexpected response returned: %s", cmp.Diff(ts.expRes, res))
			}
		})
	}
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(ctx, t)

	songs, err := s.ListSongs(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing songs: %s", err.Error())
	}
	expSongs := cl.ListSongsRes{Songs: []string{"Break down", "Testify", "Warning"}}
	if !cmp.Equal(songs, expSongs) {
		t.Fatalf("unexpected songs returned: %s", cmp.Diff(expSongs, songs))
	}

	count, err := s.CountSongs(ctx, cl.CountSongsReq{AlbumName: null.StringFrom("Testify")})
	if err != nil || count.Count != 2 {
		t.Fatalf("expected 2 songs on Testify, got %d, %v", count.Count, err)
	}
	count, err = s.CountSongs(ctx, cl.CountSongsReq{})
	if err != nil || count.Count != 1 {
		t.Fatalf("expected 1 song with no album, got %d, %v", count.Count, err)
	}
	if _, err := s.CountSongs(ctx, cl.CountSongsReq{AlbumName: null.StringFrom("Nope")}); errors.Cause(err) != cl.ErrInvalidReference {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}

	avg, err := s.AverageDuration(ctx, cl.AverageDurationReq{AlbumName: "Testify"})
	if err != nil {
		t.Fatalf("unexpected error averaging duration: %s", err.Error())
	}
	expAvg := cl.AverageDurationRes{AverageDuration: null.FloatFrom(245.5)}
	if !cmp.Equal(avg, expAvg) {
		t.Fatalf("unexpected average returned: %s", cmp.Diff(expAvg, avg))
	}

	longestSong, err := s.LongestSong(ctx)
	if err != nil {
		t.Fatalf("unexpected error getting longest song: %s", err.Error())
	}
	if !cmp.Equal(longestSong, cl.LongestSongRes{Song: null.StringFrom("Break down")}) {
		t.Fatalf("unexpected longest song: %q", longestSong.Song.String)
	}

	longestAlbum, err := s.LongestAlbum(ctx)
	if err != nil {
		t.Fatalf("unexpected error getting longest album: %s", err.Error())
	}
	if !cmp.Equal(longestAlbum, cl.LongestAlbumRes{Album: null.StringFrom("Testify")}) {
		t.Fatalf("unexpected longest album: %q", longestAlbum.Album.String)
	}
}

func TestCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.AddAlbum(ctx, cl.AddAlbumReq{Album: cl.Album{Name: "Testify", Year: 1997}}); errors.Cause(err) != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := s.LongestSong(ctx); errors.Cause(err) != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	s := New()
	if _, err := s.AddAlbum(ctx, cl.AddAlbumReq{Album: cl.Album{Name: "Testify", Year: 1997}}); err != nil {
		t.Fatalf("Unable to add album: %s", err.Error())
	}

	const writers, songsPerWriter = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < songsPerWriter; i++ {
				song := cl.Song{
					Name:      fmt.Sprintf("song-%d-%d", w, i),
					AlbumName: null.StringFrom("Testify"),
					Duration:  float64(i),
				}
				if _, err := s.AddSong(ctx, cl.AddSongReq{Song: song}); err != nil {
					t.Errorf("unexpected error adding song: %s", err.Error())
				}
				if _, err := s.ListSongs(ctx); err != nil {
					t.Errorf("unexpected error listing songs: %s", err.Error())
				}
			}
		}(w)
	}
	wg.Wait()

	res, err := s.CountSongs(ctx, cl.CountSongsReq{AlbumName: null.StringFrom("Testify")})
	if err != nil {
		t.Fatalf("unexpected error counting songs: %s", err.Error())
	}
	if res.Count != writers*songsPerWriter {
		t.Fatalf("unexpected song count: %s", cmp.Diff(writers*songsPerWriter, res.Count))
	}
}
