//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fourplayerchess/engine/internal/types"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	tbl := NewTable(1)
	_, ok := tbl.Probe(Key(12345))
	assert.False(t, ok)
}

func TestStoreThenProbeHits(t *testing.T) {
	tbl := NewTable(1)
	k := Key(98765)
	m := Move{From: SquareOf(3, 3), To: SquareOf(3, 4)}
	tbl.Store(k, m, Value(150), Value(120), 4, BoundExact)

	e, ok := tbl.Probe(k)
	assert.True(t, ok)
	assert.Equal(t, k, e.Key)
	assert.Equal(t, Value(150), e.Value)
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, BoundExact, e.Bound)
}

func TestShallowerStoreDoesNotDowngradeSameGeneration(t *testing.T) {
	tbl := NewTable(1)
	k := Key(42)
	tbl.Store(k, MoveNone, Value(0), Value(0), 10, BoundExact)
	tbl.Store(k, MoveNone, Value(0), Value(0), 2, BoundAlpha)

	e, ok := tbl.Probe(k)
	assert.True(t, ok)
	assert.Equal(t, int8(10), e.Depth)
	assert.Equal(t, BoundExact, e.Bound)
}

func TestNewGenerationAllowsOverwriteRegardlessOfDepth(t *testing.T) {
	tbl := NewTable(1)
	k := Key(42)
	tbl.Store(k, MoveNone, Value(0), Value(0), 10, BoundExact)

	tbl.NewGeneration()
	tbl.Store(k, MoveNone, Value(1), Value(1), 1, BoundBeta)

	e, ok := tbl.Probe(k)
	assert.True(t, ok)
	assert.Equal(t, int8(1), e.Depth)
	assert.Equal(t, BoundBeta, e.Bound)
}

func TestClearRemovesAllEntries(t *testing.T) {
	tbl := NewTable(1)
	k := Key(7)
	tbl.Store(k, MoveNone, Value(0), Value(0), 1, BoundExact)
	tbl.Clear()

	_, ok := tbl.Probe(k)
	assert.False(t, ok)
	assert.Equal(t, 0, tbl.Hashfull())
}

func TestResizeDiscardsEntries(t *testing.T) {
	tbl := NewTable(1)
	k := Key(7)
	tbl.Store(k, MoveNone, Value(0), Value(0), 1, BoundExact)

	tbl.Resize(2)
	_, ok := tbl.Probe(k)
	assert.False(t, ok)
}
