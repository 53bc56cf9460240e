package dataset

import (
	"compress/bzip2"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/couchcryptid/storm-impact-analysis/internal/domain"
)

// Load reads a comma-delimited file with a header row into a Frame,
// transparently decompressing .gz and .bz2 inputs. Open and decompression
// failures surface as domain.ErrIO; a header-less file or any row whose field
// count disagrees with the header surfaces as domain.ErrParse. No row is ever
// dropped silently.
func Load(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, domain.ErrIO, err)
	}
	defer f.Close()

	r, closeDecoder, err := decompress(f, path)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w: %v", path, domain.ErrIO, err)
	}
	if closeDecoder != nil {
		defer closeDecoder()
	}

	return readCSV(r, path)
}

// decompress wraps the file reader according to the path's extension.
// Returns an optional closer for decoders that hold state.
func decompress(f *os.File, path string) (io.Reader, func() error, error) {
	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz.Close, nil
	case ".bz2":
		return bzip2.NewReader(f), nil, nil
	default:
		return f, nil, nil
	}
}

func readCSV(r io.Reader, path string) (*Frame, error) {
	reader := csv.NewReader(r)
	// Keep the default FieldsPerRecord behavior: the header fixes the width
	// and any ragged row is an error, not an omission.

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w: %v", path, domain.ErrParse, err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w: %v", path, domain.ErrParse, err)
		}
		rows = append(rows, row)
	}

	return NewFrame(header, rows), nil
}
