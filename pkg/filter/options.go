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
	"fmt"

	"go.uber.org/zap"

	"github.com/scode/hashdial/pkg/partitioner"
)

const DefaultBufferSize = 64 * 1024

type options struct {
	// logger is used to pass the logger variable
	logger *zap.SugaredLogger
	// assign maps a record to its partition
	assign partitioner.AssignFunc
	// bufferSize is the size of the read and write buffers
	bufferSize int
	// command labels the pass metrics
	command string
}

type Option func(*options) error

func defaultOptions(command string) *options {
	return &options{
		assign:     partitioner.Assign,
		bufferSize: DefaultBufferSize,
		command:    command,
	}
}

// WithLogger sets the logger. Without it the logger is taken from the
// context given to Run.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}

// WithAssignFunc replaces partitioner.Assign.
func WithAssignFunc(f partitioner.AssignFunc) Option {
	return func(o *options) error {
		if f == nil {
			return fmt.Errorf("assign func must not be nil")
		}
		o.assign = f
		return nil
	}
}

// WithBufferSize sets the read and write buffer size. Lines longer than the
// buffer are still handled.
func WithBufferSize(size int) Option {
	return func(o *options) error {
		if size <= 0 {
			return fmt.Errorf("buffer size must be positive, got %d", size)
		}
		o.bufferSize = size
		return nil
	}
}
