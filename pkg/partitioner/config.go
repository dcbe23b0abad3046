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
	"fmt"

	"github.com/scode/hashdial/pkg/dialerr"
)

// Config selects the partition a filter instance is responsible for.
type Config struct {
	// Partition is the index whose records are accepted.
	Partition int
	// NumPartitions is the total number of cooperating instances.
	NumPartitions int
}

// Validate returns a configuration error if no record could ever be assigned
// to c.Partition.
func (c Config) Validate() error {
	if c.NumPartitions <= 0 {
		return dialerr.Newf(dialerr.Configuration, "num_partitions must be positive, got %d", c.NumPartitions)
	}
	if c.Partition < 0 {
		return dialerr.Newf(dialerr.Configuration, "partition must not be negative, got %d", c.Partition)
	}
	if c.Partition >= c.NumPartitions {
		return dialerr.Newf(dialerr.Configuration, "partition %d out of range, num_partitions is %d", c.Partition, c.NumPartitions)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("%d/%d", c.Partition, c.NumPartitions)
}
