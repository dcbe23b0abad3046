/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package filter

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/scode/hashdial/pkg/dialerr"
	"github.com/scode/hashdial/pkg/metrics"
	"github.com/scode/hashdial/pkg/partitioner"
	"github.com/scode/hashdial/pkg/shared/logging"
)

// Stats summarizes the most recent pass.
type Stats struct {
	RecordsRead    int64
	RecordsWritten int64
	BytesRead      int64
	BytesWritten   int64
}

// emitFunc writes line, owned by partition p, if the pass wants it. It
// returns the number of bytes written, zero when the line is skipped.
type emitFunc func(w *bufio.Writer, line []byte, p int) (int, error)

// pass is the read-assign-write loop shared by StreamFilter and Tagger.
type pass struct {
	numPartitions int
	opts          *options
	counters      *metrics.PassCounters
	stats         Stats
}

func newPass(command, partition string, numPartitions int, opts []Option) (pass, error) {
	o := defaultOptions(command)
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return pass{}, err
		}
	}
	return pass{
		numPartitions: numPartitions,
		opts:          o,
		counters:      metrics.NewPassCounters(command, partition, numPartitions),
	}, nil
}

func (ps *pass) run(ctx context.Context, in io.Reader, out io.Writer, emit emitFunc) error {
	log := ps.opts.logger
	if log == nil {
		log = logging.FromContext(ctx)
	}
	log = log.With("command", ps.opts.command, "numPartitions", ps.numPartitions)
	log.Debug("Starting pass")

	ps.stats = Stats{}
	lr := newLineReader(in, ps.opts.bufferSize)
	w := bufio.NewWriterSize(out, ps.opts.bufferSize)
	for {
		line, err := lr.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			ps.counters.ReadErrors.Inc()
			log.Errorw("Failed to read input", zap.Int64("recordsRead", ps.stats.RecordsRead), zap.Error(err))
			// records accepted so far stay written
			return multierr.Append(dialerr.Wrap(dialerr.IO, "failed to read input", err), ps.flush(w))
		}
		ps.stats.RecordsRead++
		ps.stats.BytesRead += int64(len(line))
		ps.counters.RecordsRead.Inc()
		ps.counters.ReadBytes.Add(float64(len(line)))

		p, err := ps.opts.assign(record(line), ps.numPartitions)
		if err != nil {
			return err
		}
		n, err := emit(w, line, p)
		if err != nil {
			ps.counters.WriteErrors.Inc()
			log.Errorw("Failed to write output", zap.Int64("recordsWritten", ps.stats.RecordsWritten), zap.Error(err))
			return dialerr.Wrap(dialerr.IO, "failed to write output", err)
		}
		if n > 0 {
			ps.stats.RecordsWritten++
			ps.stats.BytesWritten += int64(n)
			ps.counters.RecordsWritten.Inc()
			ps.counters.WriteBytes.Add(float64(n))
		}
	}
	if err := ps.flush(w); err != nil {
		log.Errorw("Failed to flush output", zap.Error(err))
		return err
	}
	log.Debugw("Pass complete",
		zap.Int64("recordsRead", ps.stats.RecordsRead),
		zap.Int64("recordsWritten", ps.stats.RecordsWritten),
		zap.Int64("bytesRead", ps.stats.BytesRead),
		zap.Int64("bytesWritten", ps.stats.BytesWritten))
	return nil
}

func (ps *pass) flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		ps.counters.WriteErrors.Inc()
		return dialerr.Wrap(dialerr.IO, "failed to flush output", err)
	}
	return nil
}

// Stats returns the counters of the most recent pass.
func (ps *pass) Stats() Stats {
	return ps.stats
}

// writeLine writes line with its own terminator, or "\n" if it has none.
func writeLine(w *bufio.Writer, line []byte) (int, error) {
	n, err := w.Write(line)
	if err != nil || terminated(line) {
		return n, err
	}
	if err := w.WriteByte('\n'); err != nil {
		return n, err
	}
	return n + 1, nil
}

// StreamFilter forwards the records owned by one partition.
type StreamFilter struct {
	pass
	cfg partitioner.Config
}

// NewStreamFilter returns a filter for cfg. An invalid cfg is rejected here,
// before any input is read.
func NewStreamFilter(cfg partitioner.Config, opts ...Option) (*StreamFilter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ps, err := newPass("accept", strconv.Itoa(cfg.Partition), cfg.NumPartitions, opts)
	if err != nil {
		return nil, err
	}
	return &StreamFilter{pass: ps, cfg: cfg}, nil
}

// Run reads in until end of stream and writes to out every record assigned
// to the configured partition.
func (f *StreamFilter) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	return f.run(ctx, in, out, func(w *bufio.Writer, line []byte, p int) (int, error) {
		if p != f.cfg.Partition {
			return 0, nil
		}
		return writeLine(w, line)
	})
}

// Config returns the configuration the filter was built with.
func (f *StreamFilter) Config() partitioner.Config {
	return f.cfg
}
