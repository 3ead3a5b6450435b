package memstore

import (
	"context"
	"slices"

	cl "music-catalog/pkg/catalog"

	"github.com/pkg/errors"
)

func (s *Store) AddSong(ctx context.Context, req cl.AddSongReq) (cl.AddSongRes, error) {
	var res cl.AddSongRes

	err := s.write(ctx, func(c *cl.Catalog) error {
		return c.AddSong(req.Name, req.AlbumName, req.Duration)
	})
	if err != nil {
		return res, errors.Wrap(err, "add song")
	}

	song := req.Song
	res = cl.AddSongRes{
		Song: &song,
	}
	return res, nil
}

func (s *Store) ListSongs(ctx context.Context) (cl.ListSongsRes, error) {
	var res cl.ListSongsRes

	var songs []string
	err := s.read(ctx, func(c *cl.Catalog) error {
		songs = slices.Collect(c.OrderedSongNames())
		return nil
	})
	if err != nil {
		return res, errors.Wrap(err, "list songs")
	}

	if songs == nil {
		songs = []string{}
	}
	res = cl.ListSongsRes{
		Songs: songs,
	}
	return res, nil
}

// CountSongs counts the songs of req.AlbumName, or the songs with no album
// when req.AlbumName is not valid.
func (s *Store) CountSongs(ctx context.Context, req cl.CountSongsReq) (cl.CountSongsRes, error) {
	var res cl.CountSongsRes

	err := s.read(ctx, func(c *cl.Catalog) error {
		if !req.AlbumName.Valid {
			res.Count = c.CountSongsWithNoAlbum()
			return nil
		}
		n, err := c.CountSongs(req.AlbumName.String)
		if err != nil {
			return err
		}
		res.Count = n
		return nil
	})
	if err != nil {
		return cl.CountSongsRes{}, errors.Wrap(err, "count songs")
	}
	return res, nil
}

func (s *Store) LongestSong(ctx context.Context) (cl.LongestSongRes, error) {
	var res cl.LongestSongRes

	err := s.read(ctx, func(c *cl.Catalog) error {
		res.Song = c.LongestSong()
		return nil
	})
	if err != nil {
		return res, errors.Wrap(err, "longest song")
	}
	return res, nil
}
