// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"os"

	"github.com/antgroup/spandiff/modules/strengthen"
	"github.com/antgroup/spandiff/modules/textseq"
	"github.com/antgroup/spandiff/modules/trace"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"
)

const (
	stdinName   = "-"
	defaultMode = 0o100644
	shortHash   = 12
)

var (
	ErrStdinTwice = errors.New("stdin can only be read once")
)

type input struct {
	path    string
	mode    int
	size    int64
	content []byte
	text    *textseq.Text
}

func openInput(path string) (io.ReadCloser, int64, int, error) {
	if path == stdinName {
		return io.NopCloser(os.Stdin), -1, defaultMode, nil
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	si, err := fd.Stat()
	if err != nil {
		_ = fd.Close()
		return nil, 0, 0, err
	}
	if si.IsDir() {
		_ = fd.Close()
		return nil, 0, 0, &os.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}
	return fd, si.Size(), 0o100000 | int(si.Mode().Perm()), nil
}

func (in *input) load(asText bool, opts *textseq.ReadOptions) error {
	r, size, mode, err := openInput(in.path)
	if err != nil {
		return err
	}
	defer r.Close() // nolint
	in.mode = mode
	if !asText {
		if in.content, err = textseq.ReadBytes(r, size, opts.Decompress); err != nil {
			return err
		}
		in.size = int64(len(in.content))
		return nil
	}
	if in.text, err = textseq.ReadText(r, size, opts); err != nil {
		return err
	}
	in.size = int64(len(in.text.Content))
	return nil
}

// hash returns a short BLAKE3 digest of the decoded content.
func (in *input) hash() string {
	var sum [32]byte
	if in.text != nil {
		sum = blake3.Sum256([]byte(in.text.Content))
	} else {
		sum = blake3.Sum256(in.content)
	}
	return hex.EncodeToString(sum[:])[:shortHash]
}

// loadInputs reads both sides concurrently.
func loadInputs(ctx context.Context, g *Globals, from, to string, asText bool, opts *textseq.ReadOptions) (*input, *input, error) {
	if from == stdinName && to == stdinName {
		return nil, nil, trace.Errorf("%w", ErrStdinTwice)
	}
	a, b := &input{path: from}, &input{path: to}
	tracker := trace.NewTracker(g.Verbose)
	eg, _ := errgroup.WithContext(ctx)
	for _, in := range []*input{a, b} {
		in := in
		eg.Go(func() error {
			if err := in.load(asText, opts); err != nil {
				return trace.Errorf("read %s: %w", in.path, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	tracker.StepNext("read %s (%s) and %s (%s)", from, strengthen.FormatSize(a.size), to, strengthen.FormatSize(b.size))
	if asText {
		g.DbgPrint("charset: %s -> %s, compression: %s -> %s", a.text.Charset, b.text.Charset, a.text.Compression, b.text.Compression)
	}
	return a, b, nil
}
