// Package ingest routes uploaded bytes to the right decoder based on the
// file extension, unwrapping zip archives one level deep.
package ingest

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/datapurity/purity-cli/internal/decode"
)

// Structural failures. Both are terminal for the invocation; the caller may
// re-invoke with a new file.
var (
	ErrUnsupportedType = eris.New("ingest: unsupported file type")
	ErrEmptyArchive    = eris.New("ingest: archive contains no data file")
)

// dataKinds maps recognized data extensions to decoder kinds. Zip is handled
// separately so a zip inside a zip is never unwrapped further.
var dataKinds = map[string]decode.Kind{
	".csv":  decode.KindCSV,
	".xlsx": decode.KindWorkbook,
	".xls":  decode.KindWorkbook,
}

// Resolve inspects the file name and returns the decoder kind plus the bytes
// to decode. For archives it extracts the first entry with a recognized data
// extension, in the archive's declared entry order, and ignores the rest.
func Resolve(name string, data []byte) (decode.Kind, []byte, error) {
	ext := strings.ToLower(filepath.Ext(name))

	if kind, ok := dataKinds[ext]; ok {
		return kind, data, nil
	}
	if ext == ".zip" {
		return unwrapArchive(name, data)
	}
	return "", nil, eris.Wrapf(ErrUnsupportedType, "ingest: %q", name)
}

// unwrapArchive picks the first recognized entry of the archive. Remaining
// data entries are deliberately skipped; see the locked behavior note in
// DESIGN.md before changing this.
func unwrapArchive(name string, data []byte) (decode.Kind, []byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, eris.Wrapf(err, "ingest: open archive %q", name)
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		kind, ok := dataKinds[strings.ToLower(filepath.Ext(f.Name))]
		if !ok {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", nil, eris.Wrapf(err, "ingest: open archive entry %q", f.Name)
		}
		entry, err := io.ReadAll(rc)
		closeErr := rc.Close()
		if err != nil {
			return "", nil, eris.Wrapf(err, "ingest: read archive entry %q", f.Name)
		}
		if closeErr != nil {
			return "", nil, eris.Wrapf(closeErr, "ingest: close archive entry %q", f.Name)
		}

		zap.L().Debug("ingest: unwrapped archive entry",
			zap.String("archive", name),
			zap.String("entry", f.Name),
		)
		return kind, entry, nil
	}

	return "", nil, eris.Wrapf(ErrEmptyArchive, "ingest: %q", name)
}
