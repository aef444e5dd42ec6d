// Package importer builds CD records from a library of ripped albums.
//
// Each directory containing MP3 files is treated as one CD. The album
// title and artist are read from the ID3 tags of the first tagged file
// in the directory:
//
//	scanner := importer.NewScanner(4, logger)
//	albums, err := scanner.Scan(ctx, "/music/rips")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rec := range importer.Records(albums, 100) {
//	    inv.Add(rec)
//	}
//
// # Tag Mapping
//
//   - Title: TALB (album title), falling back to the directory name
//   - Artist: TPE2 (album artist), then TPE1 (lead artist), then "Unknown"
package importer
