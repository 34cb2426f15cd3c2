// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package textseq

import (
	"bytes"
	"fmt"
	"io"
	"unsafe"

	"github.com/antgroup/spandiff/modules/streamio"
	"golang.org/x/text/encoding"
)

const (
	// MaxDiffSize is the largest input ReadText accepts.
	MaxDiffSize = 100 << 20 // 100MiB
	sniffLen    = 8000
)

type ReadOptions struct {
	// Charset of the input. Empty means UTF-8, Auto detects it.
	Charset string
	// Decompress decodes zstd and gzip input before anything else.
	Decompress bool
}

// Text is decoded input content.
type Text struct {
	Content     string
	Charset     string
	Compression streamio.Compression
}

// ReadText reads all of r as text. size is the input size when known, or a
// negative value. Inputs above MaxDiffSize fail with ErrTooLarge and inputs
// with a NUL byte in their first 8000 decoded bytes fail with
// ErrNonTextContent.
func ReadText(r io.Reader, size int64, opts *ReadOptions) (*Text, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	if size > MaxDiffSize {
		return nil, fmt.Errorf("size %d: %w", size, ErrTooLarge)
	}
	t := &Text{}
	if opts.Decompress {
		dr, err := streamio.NewDecompressReader(r)
		if err != nil {
			return nil, err
		}
		defer dr.Close() // nolint
		t.Compression = streamio.CompressionOf(dr)
		r = dr
	}
	content, err := readLimited(r, size)
	if err != nil {
		return nil, err
	}
	var e encoding.Encoding
	if opts.Charset == Auto {
		e, t.Charset = DetectCharset(content)
	} else if e, t.Charset, err = LookupCharset(opts.Charset); err != nil {
		return nil, err
	}
	if e != encoding.Nop {
		if content, err = e.NewDecoder().Bytes(content); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t.Charset, err)
		}
	}
	if bytes.IndexByte(content[:min(len(content), sniffLen)], 0) != -1 {
		return nil, ErrNonTextContent
	}
	if len(content) != 0 {
		t.Content = unsafe.String(unsafe.SliceData(content), len(content))
	}
	return t, nil
}

// ReadBytes reads all of r without any text checks, subject to
// MaxDiffSize.
func ReadBytes(r io.Reader, size int64, decompress bool) ([]byte, error) {
	if size > MaxDiffSize {
		return nil, fmt.Errorf("size %d: %w", size, ErrTooLarge)
	}
	if decompress {
		dr, err := streamio.NewDecompressReader(r)
		if err != nil {
			return nil, err
		}
		defer dr.Close() // nolint
		r = dr
	}
	return readLimited(r, size)
}

func readLimited(r io.Reader, size int64) ([]byte, error) {
	content, err := streamio.GrowReadMax(r, MaxDiffSize+1, int(size))
	if err != nil {
		return nil, err
	}
	if len(content) > MaxDiffSize {
		return nil, fmt.Errorf("more than %d bytes: %w", MaxDiffSize, ErrTooLarge)
	}
	return content, nil
}
