package catalog

import "gopkg.in/guregu/null.v3"

// Song is a value type: two songs are the same song when all three fields
// are equal.
type Song struct {
	Name      string      `json:"name"`
	AlbumName null.String `json:"album"`
	Duration  float64     `json:"duration"`
}

type AddSongReq struct {
	Song
}

type AddSongRes struct {
	Song *Song `json:"song"`
}

type ListSongsRes struct {
	Songs []string `json:"songs"`
}

// CountSongsReq counts the songs of AlbumName, or the songs with no album
// when AlbumName is not valid.
type CountSongsReq struct {
	AlbumName null.String
}

type CountSongsRes struct {
	Count int `json:"count"`
}

type LongestSongRes struct {
	Song null.String `json:"song"`
}
