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

// Package partitioner maps a record to one of N partitions by content.
//
// The hash is XXH64 with seed 0 over the raw record bytes, reduced modulo the
// partition count. XXH64 is a published algorithm with implementations in
// most languages, so instances started independently, on different hosts or
// built from different code bases, agree on the owner of every record as long
// as they share the partition count.
package partitioner
