// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package streamio

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Compression is the container format detected on an input stream.
type Compression int

const (
	Uncompressed Compression = iota
	Zstd
	Gzip
)

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	default:
	}
	return "none"
}

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

// DetectCompression reports the container format of a stream from its
// leading bytes.
func DetectCompression(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	default:
	}
	return Uncompressed
}

type decompressReader struct {
	io.Reader
	br      *bufio.Reader
	zd      *ZstdDecoder
	gz      *gzip.Reader
	kind    Compression
}

func (d *decompressReader) Close() error {
	var err error
	if d.gz != nil {
		err = d.gz.Close()
	}
	if d.zd != nil {
		PutZstdReader(d.zd)
		d.zd = nil
	}
	if d.br != nil {
		PutBufioReader(d.br)
		d.br = nil
	}
	return err
}

// NewDecompressReader returns a reader yielding the decoded content of r.
// zstd and gzip streams are recognized by their magic bytes; anything else
// is passed through unchanged. Close releases pooled decoders but does not
// close r.
func NewDecompressReader(r io.Reader) (io.ReadCloser, error) {
	br := GetBufioReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		PutBufioReader(br)
		return nil, err
	}
	d := &decompressReader{br: br, kind: DetectCompression(head)}
	switch d.kind {
	case Zstd:
		zd, err := GetZstdReader(br)
		if err != nil {
			PutZstdReader(zd)
			PutBufioReader(br)
			return nil, err
		}
		d.zd = zd
		d.Reader = zd
	case Gzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			PutBufioReader(br)
			return nil, err
		}
		d.gz = gz
		d.Reader = gz
	default:
		d.Reader = br
	}
	return d, nil
}

// CompressionOf returns the format detected by a reader created with
// NewDecompressReader, or Uncompressed for any other reader.
func CompressionOf(r io.Reader) Compression {
	if d, ok := r.(*decompressReader); ok {
		return d.kind
	}
	return Uncompressed
}
