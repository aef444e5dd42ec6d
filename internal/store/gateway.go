package store

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"os"

	ioutils "github.com/cdinventory/cdinventory/internal/io"
	"github.com/cdinventory/cdinventory/internal/model"
)

var (
	// ErrNoData is returned by Load when the inventory file does not exist.
	ErrNoData = errors.New("no inventory file")

	// ErrCorrupt is returned by Load when the file exists but cannot be decoded.
	ErrCorrupt = errors.New("inventory file is corrupt")
)

// magic prefixes every inventory file.
var magic = []byte("CDI1")

// fileRecord is the on-disk shape of a record. It is kept separate from
// model.Record so the model can change without breaking saved files.
type fileRecord struct {
	ID     int
	Title  string
	Artist string
}

// Gateway saves and loads the whole inventory to a single file.
type Gateway struct {
	path string
}

// NewGateway creates a Gateway bound to path.
func NewGateway(path string) *Gateway {
	return &Gateway{path: path}
}

// Path returns the file the gateway reads and writes.
func (g *Gateway) Path() string {
	return g.path
}

// Save overwrites the inventory file with records.
func (g *Gateway) Save(records []model.Record) error {
	data, err := encode(records)
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}
	if err := ioutils.WriteFileAtomic(g.path, data); err != nil {
		return fmt.Errorf("write %s: %w", g.path, err)
	}
	return nil
}

// Load reads the inventory file and returns its records in saved order.
//
// A missing file yields ErrNoData. A file that cannot be decoded yields
// an error wrapping ErrCorrupt.
func (g *Gateway) Load() ([]model.Record, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("read %s: %w", g.path, err)
	}

	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, g.path, err)
	}
	return records, nil
}

func encode(records []model.Record) ([]byte, error) {
	rows := make([]fileRecord, len(records))
	for i, r := range records {
		rows[i] = fileRecord{ID: r.ID, Title: r.Title, Artist: r.Artist}
	}

	var buf bytes.Buffer
	buf.Write(magic)
	if err := gob.NewEncoder(&buf).Encode(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) ([]model.Record, error) {
	if !bytes.HasPrefix(data, magic) {
		return nil, errors.New("missing header")
	}

	var rows []fileRecord
	if err := gob.NewDecoder(bytes.NewReader(data[len(magic):])).Decode(&rows); err != nil {
		return nil, err
	}

	records := make([]model.Record, len(rows))
	for i, r := range rows {
		records[i] = model.Record{ID: r.ID, Title: r.Title, Artist: r.Artist}
	}
	return records, nil
}
