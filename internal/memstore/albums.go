package memstore

import (
	"context"
	"slices"

	cl "music-catalog/pkg/catalog"

	"github.com/pkg/errors"
)

func (s *Store) AddAlbum(ctx context.Context, req cl.AddAlbumReq) (cl.AddAlbumRes, error) {
	var res cl.AddAlbumRes

	err := s.write(ctx, func(c *cl.Catalog) error {
		c.AddAlbum(req.Name, req.Year)
		return nil
	})
	if err != nil {
		return res, errors.Wrap(err, "add album")
	}

	album := req.Album
	res = cl.AddAlbumRes{
		Album: &album,
	}
	return res, nil
}

// ListAlbums returns the album names sorted ascending, restricted to
// req.Year when it is valid.
func (s *Store) ListAlbums(ctx context.Context, req cl.ListAlbumsReq) (cl.ListAlbumsRes, error) {
	var res cl.ListAlbumsRes

	var albums []string
	err := s.read(ctx, func(c *cl.Catalog) error {
		if req.Year.Valid {
			albums = slices.Sorted(c.AlbumsInYear(int(req.Year.Int64)))
			return nil
		}
		albums = slices.Sorted(c.AlbumNames())
		return nil
	})
	if err != nil {
		return res, errors.Wrap(err, "list albums")
	}

	if albums == nil {
		albums = []string{}
	}
	res = cl.ListAlbumsRes{
		Albums: albums,
	}
	return res, nil
}

func (s *Store) AverageDuration(ctx context.Context, req cl.AverageDurationReq) (cl.AverageDurationRes, error) {
	var res cl.AverageDurationRes

	err := s.read(ctx, func(c *cl.Catalog) error {
		avg, err := c.AverageDuration(req.AlbumName)
		if err != nil {
			return err
		}
		res.AverageDuration = avg
		return nil
	})
	if err != nil {
		return cl.AverageDurationRes{}, errors.Wrap(err, "average duration")
	}
	return res, nil
}

func (s *Store) LongestAlbum(ctx context.Context) (cl.LongestAlbumRes, error) {
	var res cl.LongestAlbumRes

	err := s.read(ctx, func(c *cl.Catalog) error {
		res.Album = c.LongestAlbum()
		return nil
	})
	if err != nil {
		return res, errors.Wrap(err, "longest album")
	}
	return res, nil
}
