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

package partitioner

import (
	"github.com/cespare/xxhash/v2"

	"github.com/scode/hashdial/pkg/dialerr"
)

// AssignFunc maps a record to a partition index in [0, numPartitions).
type AssignFunc func(record []byte, numPartitions int) (int, error)

// Hash returns the XXH64 (seed 0) digest of record.
func Hash(record []byte) uint64 {
	return xxhash.Sum64(record)
}

// Assign returns the partition that owns record.
func Assign(record []byte, numPartitions int) (int, error) {
	if numPartitions <= 0 {
		return 0, dialerr.Newf(dialerr.Configuration, "num_partitions must be positive, got %d", numPartitions)
	}
	// mod of the hash value decides the owning partition
	return int(Hash(record) % uint64(numPartitions)), nil
}

var _ AssignFunc = Assign
