package importer

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/cdinventory/cdinventory/internal/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// UnknownArtist is used when no file in an album carries an artist tag.
const UnknownArtist = "Unknown"

// Album is one ripped CD found on disk.
type Album struct {
	// Dir is the directory holding the album's MP3 files.
	Dir string

	// Title is the album title.
	Title string

	// Artist is the album artist.
	Artist string

	// Tagged reports whether Title and Artist came from ID3 tags
	// rather than fallbacks.
	Tagged bool
}

// Scanner reads album metadata from directories of MP3 files.
type Scanner struct {
	concurrency int
	log         *logrus.Logger
}

// NewScanner creates a Scanner that reads at most concurrency album
// directories at a time.
func NewScanner(concurrency int, log *logrus.Logger) *Scanner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Scanner{concurrency: concurrency, log: log}
}

// Scan walks root and returns one Album per directory containing MP3
// files, sorted by directory path.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Album, error) {
	dirs, err := findAlbumDirs(root)
	if err != nil {
		return nil, err
	}

	albums := make([]Album, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			albums[i] = s.readAlbum(dir.path, dir.files)
			s.log.WithFields(logrus.Fields{
				"dir":    dir.path,
				"title":  albums[i].Title,
				"artist": albums[i].Artist,
			}).Debug("Read album")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return albums, nil
}

// Records converts albums to inventory records, numbering them from startID.
func Records(albums []Album, startID int) []model.Record {
	records := make([]model.Record, len(albums))
	for i, a := range albums {
		records[i] = model.NewRecord(startID+i, a.Title, a.Artist)
	}
	return records
}

type albumDir struct {
	path  string
	files []string
}

// findAlbumDirs returns the directories under root holding .mp3 files,
// each with its files sorted by name.
func findAlbumDirs(root string) ([]albumDir, error) {
	byDir := make(map[string][]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}
		dir := filepath.Dir(path)
		byDir[dir] = append(byDir[dir], path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	dirs := make([]albumDir, 0, len(byDir))
	for dir, files := range byDir {
		sort.Strings(files)
		dirs = append(dirs, albumDir{path: dir, files: files})
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].path < dirs[j].path })
	return dirs, nil
}

// readAlbum takes title and artist from the first file that has either.
func (s *Scanner) readAlbum(dir string, files []string) Album {
	album := Album{
		Dir:    dir,
		Title:  filepath.Base(dir),
		Artist: UnknownArtist,
	}

	for _, file := range files {
		title, artist, err := readTags(file)
		if err != nil {
			s.log.WithError(err).WithField("file", file).Debug("Skipping unreadable tag")
			continue
		}
		if title == "" && artist == "" {
			continue
		}
		if title != "" {
			album.Title = title
		}
		if artist != "" {
			album.Artist = artist
		}
		album.Tagged = true
		break
	}

	return album
}

// readTags returns the album title and album artist of an MP3 file.
func readTags(path string) (title, artist string, err error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", "", err
	}
	defer tag.Close()

	title = strings.TrimSpace(tag.Album())
	// Album artist (TPE2), then lead artist (TPE1).
	artist = strings.TrimSpace(tag.GetTextFrame("TPE2").Text)
	if artist == "" {
		artist = strings.TrimSpace(tag.Artist())
	}
	return title, artist, nil
}
