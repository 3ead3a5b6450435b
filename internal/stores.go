package internal

import (
	"context"
	cl "music-catalog/pkg/catalog"
)

type CatalogStore interface {
	AddAlbum(ctx context.Context, req cl.AddAlbumReq) (cl.AddAlbumRes, error)
	AddSong(ctx context.Context, req cl.AddSongReq) (cl.AddSongRes, error)
	ListAlbums(ctx context.Context, req cl.ListAlbumsReq) (cl.ListAlbumsRes, error)
	ListSongs(ctx context.Context) (cl.ListSongsRes, error)
	CountSongs(ctx context.Context, req cl.CountSongsReq) (cl.CountSongsRes, error)
	AverageDuration(ctx context.Context, req cl.AverageDurationReq) (cl.AverageDurationRes, error)
	LongestSong(ctx context.Context) (cl.LongestSongRes, error)
	LongestAlbum(ctx context.Context) (cl.LongestAlbumRes, error)
}
