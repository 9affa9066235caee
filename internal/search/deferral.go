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

package search

import (
	"sync/atomic"

	. "github.com/fourplayerchess/engine/internal/types"
)

// deferralBuckets is the per-ply bucket count of the "searching" table:
// one atomic flag per (ply, moveHash-mod-buckets) slot, the Lazy-SMP move-
// deferral scheme every worker consults before committing to a PV-node
// move another thread is already searching. Hash collisions only ever
// cause an unnecessary defer, never an incorrect one, so a modest table
// is fine (ply_cap * bucket_count atomics, matching the teacher's own
// preference for small fixed-size lock-free tables over a synced map).
const deferralBuckets = 512

// moveDeferralTable is the cross-worker "is someone already searching this
// move at this ply" table described by the move-deferral scheme: a PV-node
// worker that finds another thread's flag set on (ply, moveHash) pushes the
// move onto a local deferred queue instead of duplicating the work, and
// revisits the queue once the normal move-picker loop is exhausted.
type moveDeferralTable struct {
	flags []int32
}

func newMoveDeferralTable() *moveDeferralTable {
	return &moveDeferralTable{flags: make([]int32, MaxPly*deferralBuckets)}
}

// moveHash folds a move's identity into a small integer; promotion and the
// castling rook destination are included so that promoting/castling
// variants of the same from/to pair map to different slots.
func moveHash(m Move) uint32 {
	h := uint32(m.From)<<8 | uint32(m.To)
	h = h*31 + uint32(m.Promotion)
	h = h*31 + uint32(m.RookTo)
	return h
}

func (t *moveDeferralTable) index(ply int, m Move) int {
	return ply*deferralBuckets + int(moveHash(m)%deferralBuckets)
}

// tryAcquire attempts to claim idx for the calling goroutine; it returns
// false (meaning "defer this move") if another worker already holds it.
func (t *moveDeferralTable) tryAcquire(idx int) bool {
	return atomic.CompareAndSwapInt32(&t.flags[idx], 0, 1)
}

// release gives idx back up once the owning worker's make/search/unmake of
// that move has completed, so a later move hashing to the same slot (or a
// later iteration revisiting this one) is not needlessly deferred forever.
func (t *moveDeferralTable) release(idx int) {
	atomic.StoreInt32(&t.flags[idx], 0)
}
