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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/scode/hashdial/pkg/dialerr"
)

func TestTagger_Run(t *testing.T) {
	tagger, err := NewTagger(2, WithLogger(zaptest.NewLogger(t).Sugar()))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, tagger.Run(context.Background(), strings.NewReader("apple\nbanana\ncherry\r\ndate"), &out))
	assert.Equal(t, "1\tapple\n0\tbanana\n1\tcherry\r\n1\tdate\n", out.String())
	assert.Equal(t, Stats{RecordsRead: 4, RecordsWritten: 4, BytesRead: 25, BytesWritten: 34}, tagger.Stats())
}

func TestTagger_MultiDigitPartitions(t *testing.T) {
	tagger, err := NewTagger(16, WithLogger(zaptest.NewLogger(t).Sugar()))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, tagger.Run(context.Background(), strings.NewReader("hello world\n\n"), &out))
	assert.Equal(t, "8\thello world\n9\t\n", out.String())
}

func TestTagger_EmptyInput(t *testing.T) {
	tagger, err := NewTagger(3)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, tagger.Run(context.Background(), strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}

func TestNewTagger_InvalidNumPartitions(t *testing.T) {
	_, err := NewTagger(0)
	require.Error(t, err)
	assert.True(t, dialerr.Is(err, dialerr.Configuration))
}

func TestTagger_ReadError(t *testing.T) {
	tagger, err := NewTagger(2, WithLogger(zaptest.NewLogger(t).Sugar()))
	require.NoError(t, err)
	var out bytes.Buffer
	err = tagger.Run(context.Background(), iotest.ErrReader(errors.New("closed pipe")), &out)
	require.Error(t, err)
	assert.True(t, dialerr.Is(err, dialerr.IO))
	assert.Empty(t, out.String())
}
