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
	"bytes"
	"errors"
	"io"
)

// lineReader yields one line at a time, terminator included. The returned
// slice is only valid until the next call.
type lineReader struct {
	r   *bufio.Reader
	buf []byte
}

func newLineReader(r io.Reader, size int) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, size)}
}

// next returns io.EOF once the input is exhausted. A final line without a
// terminator is returned as is.
func (lr *lineReader) next() ([]byte, error) {
	lr.buf = lr.buf[:0]
	for {
		frag, err := lr.r.ReadSlice('\n')
		lr.buf = append(lr.buf, frag...)
		switch {
		case err == nil:
			return lr.buf, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(lr.buf) > 0 {
				return lr.buf, nil
			}
			return nil, io.EOF
		default:
			// an incomplete line is not a record
			return nil, err
		}
	}
}

// record strips the line terminator, "\n" or "\r\n".
func record(line []byte) []byte {
	if !bytes.HasSuffix(line, []byte("\n")) {
		return line
	}
	line = line[:len(line)-1]
	return bytes.TrimSuffix(line, []byte("\r"))
}

func terminated(line []byte) bool {
	return len(line) > 0 && line[len(line)-1] == '\n'
}
