package mock

import (
	"context"
	cl "music-catalog/pkg/catalog"
)

// CatalogStore implements the catalog store interface for mocking purposes.
type CatalogStore struct {
	AddAlbumFn        func(ctx context.Context, req cl.AddAlbumReq) (cl.AddAlbumRes, error)
	AddSongFn         func(ctx context.Context, req cl.AddSongReq) (cl.AddSongRes, error)
	ListAlbumsFn      func(ctx context.Context, req cl.ListAlbumsReq) (cl.ListAlbumsRes, error)
	ListSongsFn       func(ctx context.Context) (cl.ListSongsRes, error)
	CountSongsFn      func(ctx context.Context, req cl.CountSongsReq) (cl.CountSongsRes, error)
	AverageDurationFn func(ctx context.Context, req cl.AverageDurationReq) (cl.AverageDurationRes, error)
	LongestSongFn     func(ctx context.Context) (cl.LongestSongRes, error)
	LongestAlbumFn    func(ctx context.Context) (cl.LongestAlbumRes, error)
}

// AddAlbum proxies the request to the AddAlbumFn that's injected when
// the mock store is created.
func (s *CatalogStore) AddAlbum(ctx context.Context, req cl.AddAlbumReq) (cl.AddAlbumRes, error) {
	return s.AddAlbumFn(ctx, req)
}

// AddSong proxies the request to the AddSongFn that's injected when
// the mock store is created.
func (s *CatalogStore) AddSong(ctx context.Context, req cl.AddSongReq) (cl.AddSongRes, error) {
	return s.AddSongFn(ctx, req)
}

// ListAlbums proxies the request to the ListAlbumsFn that's injected when
// the mock store is created.
func (s *CatalogStore) ListAlbums(ctx context.Context, req cl.ListAlbumsReq) (cl.ListAlbumsRes, error) {
	return s.ListAlbumsFn(ctx, req)
}

// ListSongs proxies the request to the ListSongsFn that's injected when
// the mock store is created.
func (s *CatalogStore) ListSongs(ctx context.Context) (cl.ListSongsRes, error) {
	return s.ListSongsFn(ctx)
}

// CountSongs proxies the request to the CountSongsFn that's injected when
// the mock store is created.
func (s *CatalogStore) CountSongs(ctx context.Context, req cl.CountSongsReq) (cl.CountSongsRes, error) {
	return s.CountSongsFn(ctx, req)
}

// AverageDuration proxies the request to the AverageDurationFn that's
// injected when the mock store is created.
func (s *CatalogStore) AverageDuration(ctx context.Context, req cl.AverageDurationReq) (cl.AverageDurationRes, error) {
	return s.AverageDurationFn(ctx, req)
}

// LongestSong proxies the request to the LongestSongFn that's injected when
// the mock store is created.
func (s *CatalogStore) LongestSong(ctx context.Context) (cl.LongestSongRes, error) {
	return s.LongestSongFn(ctx)
}

// LongestAlbum proxies the request to the LongestAlbumFn that's injected when
// the mock store is created.
func (s *CatalogStore) LongestAlbum(ctx context.Context) (cl.LongestAlbumRes, error) {
	return s.LongestAlbumFn(ctx)
}
