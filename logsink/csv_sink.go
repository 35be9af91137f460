//
// Copyright 2017 Rackspace
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package logsink appends sampled rows to the CSV log file
package logsink

import (
	"encoding/csv"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"github.com/racker/process-resource-sampler/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const RowWidth = 8

var (
	ErrRowWidth = errors.New("row must have exactly 8 fields")
	ErrClosed   = errors.New("sink is closed")
)

var (
	JapaneseHeader = []string{
		"日付",
		"時間",
		"プロセスID",
		"プロセス名",
		"実行ファイル",
		"CPU使用率",
		"RSS(Resident Set Size)[MB]",
		"VMS(Virtual Memory Size)[MB]",
	}
	EnglishHeader = []string{
		"Date",
		"Time",
		"PID",
		"Process Name",
		"Executable",
		"CPU%",
		"RSS(Resident Set Size)[MB]",
		"VMS(Virtual Memory Size)[MB]",
	}
)

func Header(locale string) []string {
	if locale == config.LocaleJapanese {
		return JapaneseHeader
	}
	return EnglishHeader
}

type Options struct {
	// Header is written only when the log file is created by Open
	Header   []string
	Encoding string
}

// CSVSink serializes rows from many goroutines into one CSV stream. Each row is written
// and flushed inside one critical section, so rows never interleave.
type CSVSink struct {
	mu      sync.Mutex
	w       *csv.Writer
	closers []io.Closer
	rows    int
	closed  bool
}

// NewCSVSink wraps w. A non-nil header is written immediately.
func NewCSVSink(w io.Writer, header []string) (*CSVSink, error) {
	sink := &CSVSink{w: csv.NewWriter(w)}
	sink.w.UseCRLF = runtime.GOOS == "windows"
	if header != nil {
		if err := sink.writeLocked(header); err != nil {
			return nil, errors.Wrap(err, "write header")
		}
	}
	return sink, nil
}

// Open appends to the log file at path, creating it when missing. The header of opts is
// written only if the file did not exist before this call.
func Open(path string, opts Options) (sink *CSVSink, created bool, err error) {
	_, statErr := os.Stat(path)
	created = os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, false, errors.Wrapf(err, "open log file %s", path)
	}

	var (
		w       io.Writer = f
		closers []io.Closer
	)
	if opts.Encoding == config.EncodingShiftJIS {
		tw := transform.NewWriter(f, encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder()))
		w = tw
		closers = append(closers, tw)
	}
	closers = append(closers, f)

	var header []string
	if created {
		header = opts.Header
	}
	sink, err = NewCSVSink(w, header)
	if err != nil {
		f.Close()
		return nil, false, errors.Wrapf(err, "log file %s", path)
	}
	sink.closers = closers

	log.WithFields(log.Fields{
		"file":     path,
		"created":  created,
		"encoding": opts.Encoding,
	}).Debug("Opened log file")
	return sink, created, nil
}

// WriteRow appends one row. It is safe for concurrent use.
func (s *CSVSink) WriteRow(row []string) error {
	if len(row) != RowWidth {
		return ErrRowWidth
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.writeLocked(row); err != nil {
		return err
	}
	s.rows++
	return nil
}

func (s *CSVSink) writeLocked(row []string) error {
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// Rows is the number of data rows written so far, not counting the header.
func (s *CSVSink) Rows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

// Close flushes and releases the underlying file. Closing twice is harmless.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	s.w.Flush()
	firstErr := s.w.Error()
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
