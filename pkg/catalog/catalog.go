package catalog

import (
	"iter"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"
)

// Catalog holds albums keyed by name and a set of songs. Albums and songs are
// only ever added, never removed.
//
// A Catalog is not safe for concurrent use. Callers sharing one between
// goroutines must synchronize access themselves.
type Catalog struct {
	albums map[string]int
	songs  map[Song]struct{}
	// order keeps songs in insertion order so that iteration and tie-breaks
	// are deterministic.
	order []Song
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{
		albums: make(map[string]int),
		songs:  make(map[Song]struct{}),
	}
}

// AddAlbum stores the release year of the named album, replacing any year
// previously stored for it.
func (c *Catalog) AddAlbum(name string, year int) {
	c.albums[name] = year
}

// AddSong adds a song to the catalog. When albumName is valid it must name an
// album already added, otherwise ErrInvalidReference is returned. Adding a
// song equal to one already present is a no-op.
func (c *Catalog) AddSong(name string, albumName null.String, duration float64) error {
	if albumName.Valid {
		if _, ok := c.albums[albumName.String]; !ok {
			return errors.Wrapf(ErrInvalidReference, "add song %q to album %q", name, albumName.String)
		}
	} else {
		albumName = null.String{}
	}

	s := Song{Name: name, AlbumName: albumName, Duration: duration}
	if _, ok := c.songs[s]; ok {
		return nil
	}
	c.songs[s] = struct{}{}
	c.order = append(c.order, s)
	return nil
}

// OrderedSongNames returns the names of all songs in ascending order. The
// sequence reflects the catalog at the time it is ranged over and may be
// ranged over more than once.
func (c *Catalog) OrderedSongNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		names := make([]string, 0, len(c.order))
		for _, s := range c.order {
			names = append(names, s.Name)
		}
		slices.Sort(names)
		for _, n := range names {
			if !yield(n) {
				return
			}
		}
	}
}

// AlbumNames returns the names of all albums in no particular order.
func (c *Catalog) AlbumNames() iter.Seq[string] {
	return maps.Keys(c.albums)
}

// AlbumsInYear returns the names of the albums released in year.
func (c *Catalog) AlbumsInYear(year int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for name, y := range c.albums {
			if y != year {
				continue
			}
			if !yield(name) {
				return
			}
		}
	}
}

// Year returns the release year of the named album and whether it exists.
func (c *Catalog) Year(albumName string) (int, bool) {
	y, ok := c.albums[albumName]
	return y, ok
}

// Len returns the number of distinct songs in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// CountSongs returns the number of songs on the named album.
func (c *Catalog) CountSongs(albumName string) (int, error) {
	if _, ok := c.albums[albumName]; !ok {
		return 0, errors.Wrapf(ErrInvalidReference, "count songs of album %q", albumName)
	}
	var n int
	for _, s := range c.order {
		if s.AlbumName.Valid && s.AlbumName.String == albumName {
			n++
		}
	}
	return n, nil
}

// CountSongsWithNoAlbum returns the number of songs not on any album.
func (c *Catalog) CountSongsWithNoAlbum() int {
	var n int
	for _, s := range c.order {
		if !s.AlbumName.Valid {
			n++
		}
	}
	return n
}

// AverageDuration returns the mean duration of the songs on the named album.
// The result is not valid when the album has no songs.
func (c *Catalog) AverageDuration(albumName string) (null.Float, error) {
	if _, ok := c.albums[albumName]; !ok {
		return null.Float{}, errors.Wrapf(ErrInvalidReference, "average duration of album %q", albumName)
	}
	var (
		total float64
		n     int
	)
	for _, s := range c.order {
		if s.AlbumName.Valid && s.AlbumName.String == albumName {
			total += s.Duration
			n++
		}
	}
	if n == 0 {
		return null.Float{}, nil
	}
	return null.FloatFrom(total / float64(n)), nil
}

// LongestSong returns the name of the song with the greatest duration. Among
// songs of equal duration the one added first wins. The result is not valid
// when the catalog has no songs.
func (c *Catalog) LongestSong() null.String {
	if len(c.order) == 0 {
		return null.String{}
	}
	longest := c.order[0]
	for _, s := range c.order[1:] {
		if s.Duration > longest.Duration {
			longest = s
		}
	}
	return null.StringFrom(longest.Name)
}

// LongestAlbum returns the name of the album whose songs add up to the
// greatest duration. Songs without an album are ignored. Ties go to the album
// whose first song was added first. The result is not valid when no album has
// any songs.
func (c *Catalog) LongestAlbum() null.String {
	totals := make(map[string]float64)
	var names []string
	for _, s := range c.order {
		if !s.AlbumName.Valid {
			continue
		}
		if _, ok := totals[s.AlbumName.String]; !ok {
			names = append(names, s.AlbumName.String)
		}
		totals[s.AlbumName.String] += s.Duration
	}
	if len(names) == 0 {
		return null.String{}
	}
	longest := names[0]
	for _, name := range names[1:] {
		if totals[name] > totals[longest] {
			longest = name
		}
	}
	return null.StringFrom(longest)
}
