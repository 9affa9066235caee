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
	"github.com/fourplayerchess/engine/internal/attacks"
	"github.com/fourplayerchess/engine/internal/config"
	"github.com/fourplayerchess/engine/internal/movegen"
	. "github.com/fourplayerchess/engine/internal/types"
)

// Turn order (Red -> Blue -> Yellow -> Green -> Red) happens to alternate
// team (RedYellow, BlueGreen) on every single ply, so a classic single-
// negation negamax works unmodified even though four colors, not two, are
// moving: Evaluate already returns a score from the mover's team's
// perspective, and the opponent one ply later always belongs to the other
// team. DoNullMove advances turn the same way DoMove does, so null-move
// pruning negates cleanly too.

// maxCheckExtensions bounds how many check extensions (spec.md §4.8) a
// single root-to-leaf path may accumulate, preventing a long forcing-check
// sequence from re-extending depth at every ply indefinitely.
const maxCheckExtensions = 3

// checkExtensionMoveLimit is the legalCount cutoff past which a checking
// move is no longer considered "early enough" to extend (spec.md §4.8).
const checkExtensionMoveLimit = 6

// advanceEliminated passes the turn with DoNullMove past any already-
// eliminated colors (their king was captured earlier in this line), since
// an eliminated seat never gets to move. Returns how many passes were made
// so the caller can undo them in the same order.
func (w *worker) advanceEliminated() int {
	n := 0
	for n < 4 && w.pos.IsEliminated(w.pos.Turn()) {
		w.pos.DoNullMove()
		n++
	}
	return n
}

func (w *worker) retreatEliminated(n int) {
	for i := 0; i < n; i++ {
		w.pos.UndoNullMove()
	}
}

func (w *worker) recordPV(ply int, m Move) {
	w.pv[ply][0] = m
	copy(w.pv[ply][1:], w.pv[ply+1][:w.pvLen[ply+1]])
	w.pvLen[ply] = w.pvLen[ply+1] + 1
}

// search is the negamax/PVS core: it returns a score from the side-to-move's
// team's perspective at the given ply, bounded by [alpha, beta]. It mirrors
// the shape of the teacher's alphabeta.go Search function: TT probe, static
// eval, pruning/reduction gates in roughly increasing cost order, move loop
// with PVS re-search, then a TT store on the way out.
func (w *worker) search(ply, depth int, alpha, beta Value, cutNode bool) Value {
	w.pvLen[ply] = 0
	if ply > w.selDepth {
		w.selDepth = ply
	}

	skipped := w.advanceEliminated()
	defer w.retreatEliminated(skipped)

	if w.pos.HalfMoveClock() >= 100 {
		return ValueDraw
	}

	sc := config.Settings.Search
	isRoot := ply == 0
	inCheck := attacks.KingInCheck(w.pos, w.pos.Turn())

	if depth <= 0 {
		return w.quiescence(ply, alpha, beta)
	}

	w.nodes++
	if w.nodes%4096 == 0 && w.shared.expired() {
		return alpha
	}

	// Mate distance pruning: no line through this node can be a faster or
	// slower mate than what alpha/beta already guarantee.
	if sc.UseMDP && !isRoot {
		matedScore := -ValueMate + Value(ply)
		mateScore := ValueMate - Value(ply)
		if matedScore > alpha {
			alpha = matedScore
		}
		if mateScore < beta {
			beta = mateScore
		}
		if alpha >= beta {
			return alpha
		}
	}

	var ttMove Move
	if sc.UseTT {
		if e, ok := w.tt.Probe(w.pos.ZobristKey()); ok {
			ttMove = e.Move
			if sc.UseTTValue && !isRoot && int(e.Depth) >= depth {
				switch e.Bound {
				case BoundExact:
					return e.Value
				case BoundAlpha:
					if e.Value <= alpha {
						return alpha
					}
				case BoundBeta:
					if e.Value >= beta {
						return beta
					}
				}
			}
		}
	}

	staticEval := w.evalr.Evaluate(w.pos, alpha, beta)

	// Reverse futility / static null-move pruning: if we're already far
	// enough above beta that even a bad reply can't drag us back down,
	// assume this node fails high without searching it.
	if sc.UseRFP && !isRoot && !inCheck && depth <= 6 && !beta.IsMate() {
		margin := Value(sc.RfpMargin * depth)
		if staticEval-margin >= beta {
			return staticEval - margin
		}
	}

	// Null-move pruning: give the opponent a free move and see if we still
	// fail high; if even a free tempo can't save them, this position is
	// almost certainly winning regardless of what we actually play.
	if sc.UseNullMove && !isRoot && !inCheck && depth >= sc.NmpDepth && staticEval >= beta && !beta.IsMate() {
		w.pos.DoNullMove()
		r := sc.NmpReduction
		score := -w.search(ply+1, depth-1-r, -beta, -beta+1, !cutNode)
		w.pos.UndoNullMove()
		if score >= beta {
			return beta
		}
	}

	// Internal iterative deepening: with no hash move to try first, do a
	// shallow search just to populate one before the full-depth loop.
	if sc.UseIID && ttMove.IsNone() && depth >= sc.IIDDepth {
		w.search(ply, depth-sc.IIDReduction, alpha, beta, cutNode)
		if e, ok := w.tt.Probe(w.pos.ZobristKey()); ok {
			ttMove = e.Move
		}
	}

	buf := w.pool.At(ply)
	movegen.Generate(w.pos, movegen.GenAll, buf)
	order(w.pos, buf, w.hist, ttMove, ply, w.pos.LastMove())

	var tried []Move
	legalCount := 0
	best := -ValueInfinite
	var bestMove Move
	bound := BoundAlpha
	cutoff := false

	// isPVNode mirrors the teacher's Root/PV/NonPV node classification: a
	// non-null window means later moves here are still searched with full
	// (alpha,beta), which is exactly where Lazy-SMP move deferral pays off
	// (helper threads would otherwise re-walk the same promising subtree).
	isPVNode := isRoot || beta-alpha > 1
	deferral := w.shared.deferral
	useDeferral := deferral != nil && isPVNode && ply < MaxPly

	// tryMove runs the full per-move body (pruning gates, make, PVS
	// recursion, unmake, history/killer updates) for one already-legal
	// move, returning true if it caused a beta cutoff.
	tryMove := func(m Move) bool {
		legalCount++

		givesCheck := attacks.DeliversCheckAny(w.pos, w.pos.Turn(), m.To, m.Moved.Type())
		isQuiet := !m.IsCapture() && !m.IsPromotion()

		// Futility pruning: near the leaves, a quiet move that can't even
		// in principle close a large static gap isn't worth searching.
		if sc.UseFP && !isRoot && isQuiet && !inCheck && !givesCheck && depth <= 4 {
			margin := Value(sc.FpMargin * depth)
			if staticEval+margin <= alpha {
				return false
			}
		}

		// Late move pruning: once many quiet moves have already been tried,
		// skip the rest; the cutoff grows quadratically with depth rather
		// than sitting at a flat count.
		lmpThreshold := 1 + depth*depth/5
		if sc.UseLmp && !isRoot && isQuiet && !inCheck && depth <= 4 && legalCount > lmpThreshold {
			return false
		}

		// Futility for captures: a late, losing-ish capture that can't
		// plausibly close the gap to alpha even counting the captured
		// piece's value and a generous per-ply margin isn't worth searching.
		if !isRoot && m.IsCapture() && !inCheck && !givesCheck && depth < 10 && legalCount > 1 {
			capFutility := staticEval + 400 + Value(291*depth) + m.Captured.ValueOf()
			if capFutility < alpha {
				return false
			}
		}

		extension := 0
		if givesCheck && legalCount <= checkExtensionMoveLimit && w.checkExtensions < maxCheckExtensions {
			extension = 1
			w.checkExtensions++
		}

		w.pos.DoMove(m)

		reduction := 0
		if sc.UseLmr && depth >= sc.LmrDepth && legalCount > sc.LmrMovesSearched && isQuiet && !inCheck && !givesCheck {
			depthPast5 := depth - 5
			if depthPast5 < 0 {
				depthPast5 = 0
			}
			reduction = 1 + depthPast5/5
			if cutNode && ttMove.IsNone() {
				reduction += 2
			}
		}

		childDepth := depth - 1 + extension

		var score Value
		if legalCount == 1 {
			score = -w.search(ply+1, childDepth, -beta, -alpha, false)
		} else {
			score = -w.search(ply+1, childDepth-reduction, -alpha-1, -alpha, true)
			if score > alpha && (reduction > 0 || score < beta) {
				score = -w.search(ply+1, childDepth, -beta, -alpha, false)
			}
		}

		w.pos.UndoMove()
		if extension > 0 {
			w.checkExtensions--
		}
		tried = append(tried, m)

		if w.shared.expired() {
			return true
		}

		if score > best {
			best = score
			bestMove = m
			if score > alpha {
				alpha = score
				bound = BoundExact
				w.recordPV(ply, m)
			}
		}
		if alpha >= beta {
			bound = BoundBeta
			if isQuiet {
				w.hist.AddKiller(ply, m)
				w.hist.SetCounterMove(w.pos.Turn(), w.pos.LastMove(), m)
				w.hist.UpdateQuiet(m.Moved.Color(), quietOnly(tried), m, depth)
			} else {
				w.hist.UpdateCapture(m.Moved.Type(), m.Captured.Color(), m.Captured.Type(), true, depth)
			}
			return true
		}
		return false
	}

	var deferred []Move
	for i := 0; i < buf.Len() && !cutoff; i++ {
		m := buf.At(i)
		if !movegen.IsLegal(w.pos, m) {
			continue
		}

		if useDeferral {
			idx := deferral.index(ply, m)
			if !deferral.tryAcquire(idx) {
				deferred = append(deferred, m)
				continue
			}
			cutoff = tryMove(m)
			deferral.release(idx)
			continue
		}
		cutoff = tryMove(m)
	}

	// Revisit moves another thread was searching when we first reached
	// them; by now that thread may well be done, or we settle for
	// occasionally skipping a move a sibling thread already covers.
	for _, m := range deferred {
		if cutoff || w.shared.expired() {
			break
		}
		idx := deferral.index(ply, m)
		if !deferral.tryAcquire(idx) {
			continue
		}
		cutoff = tryMove(m)
		deferral.release(idx)
	}

	if w.shared.expired() {
		return alpha
	}

	if legalCount == 0 {
		if inCheck {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	if sc.UseTT {
		w.tt.Store(w.pos.ZobristKey(), bestMove, best, staticEval, depth, bound)
	}
	return best
}

func quietOnly(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if !m.IsCapture() && !m.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}

// quiescence extends the search along capture sequences only, until the
// position is "quiet" (no more profitable captures), to avoid the horizon
// effect a hard depth cutoff would otherwise create right before a trade.
func (w *worker) quiescence(ply int, alpha, beta Value) Value {
	skipped := w.advanceEliminated()
	defer w.retreatEliminated(skipped)

	w.nodes++
	if ply > w.selDepth {
		w.selDepth = ply
	}
	if w.nodes%4096 == 0 && w.shared.expired() {
		return alpha
	}
	if ply >= MaxPly-1 {
		return w.evalr.Evaluate(w.pos, alpha, beta)
	}

	sc := config.Settings.Search
	inCheck := attacks.KingInCheck(w.pos, w.pos.Turn())

	var standPat Value
	if !inCheck {
		standPat = w.evalr.Evaluate(w.pos, alpha, beta)
		if sc.UseQSStandpat {
			if standPat >= beta {
				return standPat
			}
			if standPat > alpha {
				alpha = standPat
			}
		}
	} else {
		standPat = -ValueInfinite
	}

	var ttMove Move
	if sc.UseQSTT {
		if e, ok := w.tt.Probe(w.pos.ZobristKey()); ok {
			ttMove = e.Move
		}
	}

	mode := movegen.GenCaptures
	if inCheck {
		mode = movegen.GenAll
	}
	buf := w.pool.At(ply)
	movegen.Generate(w.pos, mode, buf)
	order(w.pos, buf, w.hist, ttMove, ply, w.pos.LastMove())

	legalCount := 0
	best := standPat
	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if !inCheck && m.IsCapture() && sc.UseSEE && !seeGE(w.pos, m, 0) {
			continue
		}
		if !movegen.IsLegal(w.pos, m) {
			continue
		}
		legalCount++

		w.pos.DoMove(m)
		score := -w.quiescence(ply+1, -beta, -alpha)
		w.pos.UndoMove()

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				w.recordPV(ply, m)
			}
		}
		if alpha >= beta {
			break
		}
	}

	if inCheck && legalCount == 0 {
		return -ValueMate + Value(ply)
	}
	return best
}
