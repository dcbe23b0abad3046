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

// Package filter runs a single pass over a newline-delimited record stream.
//
// StreamFilter forwards the records owned by one partition, unmodified and in
// input order. Tagger prefixes every record with the partition that owns it.
// Both keep one record in memory at a time and stop at the first read or
// write failure; output written before the failure is left in place.
package filter
