package ui

import (
	"errors"
	"io"
	"sync"
)

// failure holds the first error seen on a stream.
type failure struct {
	mu     sync.Mutex
	err    error
	onFail func(error)
}

func (f *failure) record(err error) {
	f.mu.Lock()
	first := f.err == nil
	if first {
		f.err = err
	}
	onFail := f.onFail
	f.mu.Unlock()

	if first && onFail != nil {
		onFail(err)
	}
}

// Err returns the first recorded error, if any.
func (f *failure) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// ttyFile is what bubbletea needs from a stream to switch it to raw mode and
// query its size. Wrappers keep it so a watched terminal is still a terminal.
type ttyFile interface {
	io.ReadWriteCloser
	Fd() uintptr
	Name() string
}

type inputReader struct {
	io.Reader
	failed *failure
}

func (r inputReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		r.failed.record(err)
	}
	return n, err
}

type inputFile struct {
	ttyFile
	failed *failure
}

func (f inputFile) Read(p []byte) (int, error) {
	return inputReader{Reader: f.ttyFile, failed: f.failed}.Read(p)
}

// watchInput records read failures of r other than end of input.
func watchInput(r io.Reader, failed *failure) io.Reader {
	if r == nil {
		return nil
	}
	if f, ok := r.(ttyFile); ok {
		return inputFile{ttyFile: f, failed: failed}
	}
	return inputReader{Reader: r, failed: failed}
}

type outputWriter struct {
	io.Writer
	failed *failure
}

func (w outputWriter) Write(p []byte) (int, error) {
	n, err := w.Writer.Write(p)
	if err != nil {
		w.failed.record(err)
	}
	return n, err
}

type outputFile struct {
	ttyFile
	failed *failure
}

func (f outputFile) Write(p []byte) (int, error) {
	return outputWriter{Writer: f.ttyFile, failed: f.failed}.Write(p)
}

// watchOutput records write failures of w.
func watchOutput(w io.Writer, failed *failure) io.Writer {
	if f, ok := w.(ttyFile); ok {
		return outputFile{ttyFile: f, failed: failed}
	}
	return outputWriter{Writer: w, failed: failed}
}
