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

// Package search implements the engine's move search: a principal-variation
// alpha-beta core with the usual modern pruning/reduction/extension set, run
// by a Lazy-SMP pool of worker goroutines sharing one transposition table,
// following the shape of the teacher's internal/search package
// (search.go/alphabeta.go/see.go) but rebuilt for the four-player team-score
// Evaluate contract and generalized from two threads racing on a shared
// Mutex to an arbitrary pool coordinated with golang.org/x/sync/errgroup and
// golang.org/x/sync/semaphore, the concurrency primitives the teacher itself
// depends on for its own worker/book-probe handshakes.
package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/fourplayerchess/engine/internal/board"
	"github.com/fourplayerchess/engine/internal/config"
	"github.com/fourplayerchess/engine/internal/eval"
	"github.com/fourplayerchess/engine/internal/history"
	"github.com/fourplayerchess/engine/internal/logging"
	"github.com/fourplayerchess/engine/internal/movegen"
	"github.com/fourplayerchess/engine/internal/tt"
	"github.com/fourplayerchess/engine/internal/util"
	. "github.com/fourplayerchess/engine/internal/types"
)

// InfoCallback is called from the main search thread each time a new
// iteration completes, so a UCI driver can emit "info depth ... pv ..."
// lines without the search package knowing anything about the wire format.
type InfoCallback func(info Info)

// Info is one progress report from the iterative-deepening driver.
type Info struct {
	Depth    int
	SelDepth int
	Score    Value
	Nodes    uint64
	Nps      uint64
	Time     time.Duration
	PV       []Move
	Hashfull int
}

// Result is the final outcome of a search, returned once every worker has
// stopped.
type Result struct {
	BestMove   Move
	PonderMove Move
	Score      Value
	Depth      int
	Nodes      uint64
	Time       time.Duration
}

// Engine owns the resources a search needs across many "go" commands: the
// shared transposition table, a semaphore capping concurrently searching
// threads (mirroring the teacher's use of golang.org/x/sync/semaphore to
// gate parallel book/eval probes), and the atomic stop flag every worker
// polls. One Engine is created per UCI session.
type Engine struct {
	TT  *tt.Table
	sem *semaphore.Weighted

	mu        sync.Mutex
	searching int32
	stopFlag  int32
}

// NewEngine builds an Engine with a transposition table sized per config.
func NewEngine() *Engine {
	return &Engine{
		TT:  tt.NewTable(config.Settings.Search.TTSizeMB),
		sem: semaphore.NewWeighted(int64(util.Max(1, config.Settings.Search.NumThreads))),
	}
}

// IsSearching reports whether a search is currently in flight.
func (e *Engine) IsSearching() bool {
	return atomic.LoadInt32(&e.searching) == 1
}

// Stop requests every worker to return its current best move as soon as
// possible, the same "please stop" contract as the teacher's Search.Stop.
func (e *Engine) Stop() {
	atomic.StoreInt32(&e.stopFlag, 1)
}

// NewGame clears the transposition table and bumps nothing else; each
// worker's history table is freshly allocated per search already.
func (e *Engine) NewGame() {
	e.TT.Clear()
}

// Search runs a synchronous Lazy-SMP search to the limits given, calling
// onInfo after every completed root iteration on the main thread, and
// returns once every worker has stopped (either by hitting the time limit,
// a Stop() call, or exhausting Limits.Depth). Limits.Nodes is not checked.
func (e *Engine) Search(root *board.Position, limits Limits, onInfo InfoCallback) Result {
	atomic.StoreInt32(&e.searching, 1)
	atomic.StoreInt32(&e.stopFlag, 0)
	defer atomic.StoreInt32(&e.searching, 0)

	e.TT.NewGeneration()
	start := time.Now()
	deadline := computeDeadline(root, limits, start)
	logging.GetSearchLog().Debugf("search start turn=%s deadline=%s", root.Turn(), deadline)

	numThreads := util.Max(1, config.Settings.Search.NumThreads)
	var shared sharedState
	shared.deadline = deadline
	shared.stopFlag = &e.stopFlag
	shared.limits = limits
	shared.start = start
	shared.numThreads = numThreads
	if numThreads > 1 {
		shared.deferral = newMoveDeferralTable()
	}

	results := make([]workerResult, numThreads)
	ctx := context.Background()
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < numThreads; i++ {
		i := i
		if err := e.sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer e.sem.Release(1)
			w := newWorker(i, root.Clone(), e.TT, &shared)
			results[i] = w.iterativeDeepening(limits, func(info Info) {
				if i == 0 && onInfo != nil {
					onInfo(info)
				}
			})
			return nil
		})
	}
	_ = g.Wait()

	best := results[0]
	for _, r := range results[1:] {
		if r.depth > best.depth || (r.depth == best.depth && r.score > best.score) {
			best = r
		}
	}
	return Result{
		BestMove: best.bestMove,
		Score:    best.score,
		Depth:    best.depth,
		Nodes:    sumNodes(results),
		Time:     time.Since(start),
	}
}

func sumNodes(results []workerResult) uint64 {
	var n uint64
	for _, r := range results {
		n += r.nodes
	}
	return n
}

// computeDeadline turns a four-clock Limits into a single wall-clock
// deadline for this search, the way the teacher's TimeManager collapses
// wtime/btime/winc/binc into one allotment, generalized to pick the mover's
// own clock out of the four.
func computeDeadline(root *board.Position, limits Limits, start time.Time) time.Time {
	if limits.Infinite || limits.Ponder {
		return time.Time{}
	}
	if limits.MoveTime > 0 {
		return start.Add(limits.MoveTime)
	}
	if !limits.TimeControl {
		return time.Time{}
	}
	us := root.Turn()
	left := limits.TimeLeft[us]
	inc := limits.Increment[us]
	if left <= 0 {
		return time.Time{}
	}
	movesToGo := limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	budget := left/time.Duration(movesToGo) + inc
	// never plan to use more than half the remaining clock on one move
	if budget > left/2 {
		budget = left / 2
	}
	return start.Add(budget)
}

// sharedState is read-only (after creation) or atomic-only data every
// Lazy-SMP worker goroutine touches, kept separate from per-worker mutable
// search state (PV tables, node counts, history) so workers never share a
// cache line they'd need to lock.
type sharedState struct {
	deadline   time.Time
	stopFlag   *int32
	limits     Limits
	start      time.Time
	numThreads int
	deferral   *moveDeferralTable
}

func (s *sharedState) expired() bool {
	if atomic.LoadInt32(s.stopFlag) == 1 {
		return true
	}
	if s.deadline.IsZero() {
		return false
	}
	return time.Now().After(s.deadline)
}

// worker is one Lazy-SMP search thread: its own cloned position, history
// table and move-partition pool, searching against the Engine's shared TT.
// Worker 0 is the "main" thread whose info lines are the ones reported
// upward; helper threads (1..N-1) search the same root with the same
// aspiration windows and share the TT and move-deferral table with it.
// Search returns the result of the worker that reached the greatest depth
// (the higher score wins a tie).
type worker struct {
	id      int
	pos     *board.Position
	tt      *tt.Table
	evalr   *eval.Evaluator
	hist    *history.Table
	pool    *movegen.PartitionPool
	shared  *sharedState
	nodes   uint64
	selDepth int
	pv      [MaxPly][MaxPly]Move
	pvLen   [MaxPly]int
	// checkExtensions counts how many check extensions have already been
	// granted along the current root-to-leaf path, capped at
	// maxCheckExtensions.
	checkExtensions int
}

func newWorker(id int, pos *board.Position, t *tt.Table, shared *sharedState) *worker {
	return &worker{
		id:     id,
		pos:    pos,
		tt:     t,
		evalr:  eval.NewEvaluator(),
		hist:   history.NewTable(),
		pool:   movegen.NewPartitionPool(),
		shared: shared,
	}
}

type workerResult struct {
	bestMove Move
	score    Value
	depth    int
	nodes    uint64
}

// iterativeDeepening drives successive full-width searches of increasing
// depth, widening a failed aspiration window and reporting each completed
// iteration via report, following the teacher's IterativeDeepening loop.
func (w *worker) iterativeDeepening(limits Limits, report func(Info)) workerResult {
	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	var res workerResult
	alpha, beta := -ValueInfinite, ValueInfinite
	window := Value(config.Settings.Search.AspirationWindow)

	for depth := 1; depth <= maxDepth; depth++ {
		if w.shared.expired() && depth > 1 {
			break
		}
		var score Value
		if config.Settings.Search.UseAspiration && depth >= 4 {
			a, b := res.score-window, res.score+window
			for {
				score = w.search(0, depth, a, b, false)
				if w.shared.expired() {
					break
				}
				if score <= a {
					a -= window * 2
				} else if score >= b {
					b += window * 2
				} else {
					break
				}
			}
		} else {
			score = w.search(0, depth, alpha, beta, false)
		}

		if w.shared.expired() && depth > 1 {
			break
		}

		res.score = score
		res.depth = depth
		res.nodes = w.nodes
		if w.pvLen[0] > 0 {
			res.bestMove = w.pv[0][0]
		}

		if w.id == 0 && report != nil {
			elapsed := time.Since(w.shared.start)
			report(Info{
				Depth:    depth,
				SelDepth: w.selDepth,
				Score:    score,
				Nodes:    w.nodes,
				Nps:      util.Nps(w.nodes, elapsed),
				Time:     elapsed,
				PV:       append([]Move(nil), w.pv[0][:w.pvLen[0]]...),
				Hashfull: w.tt.Hashfull(),
			})
		}

		if score.IsMate() && score > 0 && score.MatePly() <= depth {
			break
		}
	}
	return res
}
