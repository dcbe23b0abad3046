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

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelCommand       = "command"
	LabelPartition     = "partition"
	LabelNumPartitions = "num_partitions"
)

// PartitionAll is the partition label of passes that route every record,
// such as assign.
const PartitionAll = "all"

var passLabels = []string{LabelCommand, LabelPartition, LabelNumPartitions}

// Pass metrics
var (
	// RecordsReadCount is the number of records read from the input
	RecordsReadCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashdial",
		Name:      "records_read_total",
		Help:      "Total number of records read",
	}, passLabels)

	// RecordsWrittenCount is the number of records written to the output
	RecordsWrittenCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashdial",
		Name:      "records_written_total",
		Help:      "Total number of records written",
	}, passLabels)

	// ReadBytesCount is the number of bytes read, terminators included
	ReadBytesCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashdial",
		Name:      "read_bytes_total",
		Help:      "Total number of bytes read",
	}, passLabels)

	// WriteBytesCount is the number of bytes written, terminators included
	WriteBytesCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashdial",
		Name:      "write_bytes_total",
		Help:      "Total number of bytes written",
	}, passLabels)

	// ReadErrorCount is the number of passes aborted by a read failure
	ReadErrorCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashdial",
		Name:      "read_error_total",
		Help:      "Total number of read errors",
	}, passLabels)

	// WriteErrorCount is the number of passes aborted by a write failure
	WriteErrorCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashdial",
		Name:      "write_error_total",
		Help:      "Total number of write errors",
	}, passLabels)
)

// PassCounters holds the counters of a single pass, resolved once so the
// per-record path does not look up label values.
type PassCounters struct {
	RecordsRead    prometheus.Counter
	RecordsWritten prometheus.Counter
	ReadBytes      prometheus.Counter
	WriteBytes     prometheus.Counter
	ReadErrors     prometheus.Counter
	WriteErrors    prometheus.Counter
}

// NewPassCounters returns the counters labelled for the given command and
// partition. Pass PartitionAll as partition when a pass is not bound to one.
func NewPassCounters(command, partition string, numPartitions int) *PassCounters {
	labels := prometheus.Labels{
		LabelCommand:       command,
		LabelPartition:     partition,
		LabelNumPartitions: strconv.Itoa(numPartitions),
	}
	return &PassCounters{
		RecordsRead:    RecordsReadCount.With(labels),
		RecordsWritten: RecordsWrittenCount.With(labels),
		ReadBytes:      ReadBytesCount.With(labels),
		WriteBytes:     WriteBytesCount.With(labels),
		ReadErrors:     ReadErrorCount.With(labels),
		WriteErrors:    WriteErrorCount.With(labels),
	}
}

// WriteTextfile writes every metric registered with the default registry to
// path in the text exposition format, for the node exporter textfile
// collector. The file is replaced atomically.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
