// Package compress stores documents in a compact on-disk form. The format
// is a short magic header followed by a DEFLATE stream; the header keeps
// decompress from silently mangling files that were never compressed.
package compress

import (
	"bytes"
	"compress/flate"
	"io"

	"github.com/snxml/snxml/pkg/errors"
)

// magic identifies snxml compressed files.
var magic = []byte("SNXZ1")

// Compress deflates data and prepends the format header.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(magic)

	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCompress, "creating compressor")
	}
	if _, err := w.Write(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrCompress, "compressing data")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCompress, "flushing compressor")
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress. Input without the format header is
// rejected, not guessed at.
func Decompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, magic) {
		return nil, errors.New(errors.ErrDecompress, "not a snxml compressed file")
	}

	r := flate.NewReader(bytes.NewReader(data[len(magic):]))
	defer func() { _ = r.Close() }()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDecompress, "decompressing data")
	}
	return out, nil
}
