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
	"io"
	"strconv"

	"github.com/scode/hashdial/pkg/dialerr"
	"github.com/scode/hashdial/pkg/metrics"
)

// Tagger writes every record prefixed with its partition index and a tab.
type Tagger struct {
	pass
	prefix []byte
}

func NewTagger(numPartitions int, opts ...Option) (*Tagger, error) {
	if numPartitions <= 0 {
		return nil, dialerr.Newf(dialerr.Configuration, "num_partitions must be positive, got %d", numPartitions)
	}
	ps, err := newPass("assign", metrics.PartitionAll, numPartitions, opts)
	if err != nil {
		return nil, err
	}
	return &Tagger{pass: ps}, nil
}

// Run reads in until end of stream and writes "<partition>\t<line>" to out
// for each record.
func (t *Tagger) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	return t.run(ctx, in, out, func(w *bufio.Writer, line []byte, p int) (int, error) {
		t.prefix = strconv.AppendInt(t.prefix[:0], int64(p), 10)
		t.prefix = append(t.prefix, '\t')
		n, err := w.Write(t.prefix)
		if err != nil {
			return n, err
		}
		m, err := writeLine(w, line)
		return n + m, err
	})
}
