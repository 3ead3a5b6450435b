package catalog

import "gopkg.in/guregu/null.v3"

type Album struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

type AddAlbumReq struct {
	Album
}

type AddAlbumRes struct {
	Album *Album `json:"album"`
}

// ListAlbumsReq filters the album list by release year when Year is valid.
type ListAlbumsReq struct {
	Year null.Int
}

type ListAlbumsRes struct {
	Albums []string `json:"albums"`
}

type AverageDurationReq struct {
	AlbumName string
}

type AverageDurationRes struct {
	AverageDuration null.Float `json:"average_duration"`
}

type LongestAlbumRes struct {
	Album null.String `json:"album"`
}
