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

// Package tt implements a direct-mapped transposition table, guarded by
// striped mutexes, shared by every Lazy-SMP search thread. It plays the
// role of the teacher's internal/transpositiontable package but replaces
// per-entry age-decrement replacement with a generation counter: every
// entry records the search generation that last wrote it, and a store from
// a later generation always overwrites an entry from an older generation,
// whatever that entry's depth, which is simpler to reason about under
// concurrent writers than decrementing a shared age field.
package tt

import (
	"sync"
	"sync/atomic"

	. "github.com/fourplayerchess/engine/internal/types"
)

// Entry is the table's 24-byte-logical packed record (Go's struct layout
// will pad it to a machine word boundary, but the field set matches the
// teacher's ttentry.go bit-packing intent): a 64-bit key, the best move
// found for this position, its search depth, bound type, generation, and a
// tri-state "is exact PV" marker folded into Bound.
type Entry struct {
	Key        Key
	Move       Move
	Value      Value
	Eval       Value
	Depth      int8
	Bound      Bound
	Generation uint8
}

// Table is a fixed-size, direct-mapped hash table: each key maps to exactly
// one slot, and a write either fills an empty slot or replaces whichever
// entry loses by the depth/generation comparison in shouldReplace.
type Table struct {
	entries []Entry
	mask    uint64
	mu      []sync.Mutex // narrow per-bucket-group locks; see Probe/Store
	gen     uint32
}

const lockStripes = 1024

// NewTable allocates a table sized to hold roughly sizeMB megabytes of
// entries, rounding the number of slots up to a power of two.
func NewTable(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = 64
	}
	bytesWanted := uint64(sizeMB) * 1024 * 1024
	entrySize := uint64(32) // generous upper bound incl. padding
	numEntries := nextPow2(bytesWanted / entrySize)
	if numEntries == 0 {
		numEntries = 1
	}
	t := &Table{
		entries: make([]Entry, numEntries),
		mask:    numEntries - 1,
		mu:      make([]sync.Mutex, lockStripes),
	}
	return t
}

func nextPow2(n uint64) uint64 {
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// NewGeneration bumps the search generation, called once per new root
// search so fresh entries always win ties against stale ones from a
// previous "go" command without needing to touch every slot.
func (t *Table) NewGeneration() {
	atomic.AddUint32(&t.gen, 1)
}

func (t *Table) currentGen() uint8 {
	return uint8(atomic.LoadUint32(&t.gen))
}

func (t *Table) index(k Key) uint64 {
	return uint64(k) & t.mask
}

func (t *Table) lockFor(idx uint64) *sync.Mutex {
	return &t.mu[idx%lockStripes]
}

// Probe looks up k, returning the stored entry and true on a hit (matching
// key). Probe and Store take the same stripe lock for a slot, so a probe
// never sees a half-written entry.
func (t *Table) Probe(k Key) (Entry, bool) {
	idx := t.index(k)
	lock := t.lockFor(idx)
	lock.Lock()
	e := t.entries[idx]
	lock.Unlock()
	if e.Key != k {
		return Entry{}, false
	}
	return e, true
}

// Store writes a search result into the slot for k, replacing the current
// occupant only if shouldReplace says the new information is more valuable.
func (t *Table) Store(k Key, move Move, value, eval Value, depth int, bound Bound) {
	idx := t.index(k)
	lock := t.lockFor(idx)
	gen := t.currentGen()
	lock.Lock()
	defer lock.Unlock()
	cur := t.entries[idx]
	if cur.Key == k && move.IsNone() {
		move = cur.Move // preserve a known best move when storing a boundless re-probe
	}
	if cur.Key != 0 && !shouldReplace(cur, k, depth, gen) {
		return
	}
	t.entries[idx] = Entry{Key: k, Move: move, Value: value, Eval: eval, Depth: int8(depth), Bound: bound, Generation: gen}
}

func shouldReplace(cur Entry, newKey Key, newDepth int, newGen uint8) bool {
	if cur.Key == newKey {
		return newDepth >= int(cur.Depth) || newGen != cur.Generation
	}
	if cur.Generation != newGen {
		return true
	}
	return newDepth >= int(cur.Depth)
}

// Clear resets every slot, used by "ucinewgame".
func (t *Table) Clear() {
	for i := range t.mu {
		t.mu[i].Lock()
	}
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	for i := range t.mu {
		t.mu[i].Unlock()
	}
	atomic.StoreUint32(&t.gen, 0)
}

// Hashfull estimates table occupancy in permille, sampling 1000 slots the
// way the teacher's TtTable.Hashfull does rather than scanning the whole
// table.
func (t *Table) Hashfull() int {
	sample := 1000
	if uint64(sample) > uint64(len(t.entries)) {
		sample = len(t.entries)
	}
	used := 0
	gen := t.currentGen()
	for i := 0; i < sample; i++ {
		if t.entries[i].Key != 0 && t.entries[i].Generation == gen {
			used++
		}
	}
	if sample == 0 {
		return 0
	}
	return used * 1000 / sample
}

// Resize allocates a new backing array, discarding all current entries.
func (t *Table) Resize(sizeMB int) {
	n := NewTable(sizeMB)
	t.entries = n.entries
	t.mask = n.mask
	t.mu = n.mu
	atomic.StoreUint32(&t.gen, 0)
}
