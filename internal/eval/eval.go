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

// Package eval implements the classical static evaluator: material,
// piece-square tables, mobility, king safety, piece activation, and a
// major-piece imbalance penalty, the way the teacher's internal/evaluator
// package composes per-term scores, generalized from two sides to the
// four-player team score this variant actually needs (a team's score is
// its own terms minus its opponents', not a simple side-to-move flip).
package eval

import (
	"github.com/fourplayerchess/engine/internal/attacks"
	"github.com/fourplayerchess/engine/internal/board"
	"github.com/fourplayerchess/engine/internal/movegen"
	. "github.com/fourplayerchess/engine/internal/types"
)

// Evaluator holds configuration and reusable scratch state (the pawn-
// structure cache, a mobility move-generation buffer) for repeated
// Evaluate calls across a search.
type Evaluator struct {
	UsePawnStructure bool
	pawns            *pawnCache
	scratch          *movegen.MoveList
}

// NewEvaluator returns an Evaluator with its pawn-structure cache ready.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		UsePawnStructure: true,
		pawns:            newPawnCache(1 << 14),
		scratch:          movegen.NewMoveList(movegen.MovesPerPartition),
	}
}

// kingSafetyMaxSwing is the fixed margin of Evaluate's lazy cutoff. The
// subtotal it is compared against already includes material, PST, king
// safety and the knight-reach bonus (all summed by colorTerms). The terms
// added after the cutoff (mobility, activation, imbalance, pawn structure)
// are not bounded by this margin, so an early return can differ from the
// full score by more than 600.
const kingSafetyMaxSwing = Value(600)

// Evaluate returns a centipawn score from the perspective of p's team to
// move: positive favors the team on move, negative favors the opposing
// team. alpha/beta are the caller's current search window and enable the
// lazy-evaluation early-out below; pass -ValueInfinite/ValueInfinite to
// disable it and always compute the full score. Terminal positions with no
// legal replies (checkmate/stalemate) are not detected here; callers check
// that before calling Evaluate. A position whose last move captured a king
// is resolved immediately via the game-over shortcut below.
func (e *Evaluator) Evaluate(p *board.Position, alpha, beta Value) Value {
	us := p.Turn().Team()

	if mv := p.LastMove(); mv.IsCapture() && mv.Captured.Type() == King {
		if mv.Moved.Color().Team() == us {
			return ValueMate
		}
		return -ValueMate
	}

	var teamScore [2]Score
	var majors [ColorLength]int
	var activated [ColorLength]int
	var mobility [ColorLength]int

	for c := Red; c <= Green; c++ {
		if p.IsEliminated(c) {
			continue
		}
		t := c.Team()
		teamScore[t] = teamScore[t].Add(colorTerms(p, c))
		majors[c] = majorPieceCount(p, c)
	}

	gpf := gamePhaseFactor(p)
	partial := teamScore[TeamRedYellow].Sub(teamScore[TeamBlueGreen])

	// Lazy evaluation: material, PST, king safety and the knight-reach
	// bonus are already folded into colorTerms above. Once that subtotal
	// clears the window by more than kingSafetyMaxSwing in either
	// direction, return it without generating moves for mobility and
	// activation or adding imbalance and the pawn-structure supplement.
	early := partial.ValueFromScore(gpf)
	if us == TeamBlueGreen {
		early = -early
	}
	if early-kingSafetyMaxSwing >= beta || early+kingSafetyMaxSwing <= alpha {
		return clampValue(early, alpha, beta)
	}

	for c := Red; c <= Green; c++ {
		if p.IsEliminated(c) {
			continue
		}
		activated[c] = activatedPieceCount(p, c)
		mobility[c] = e.pseudoLegalMoveCount(p, c)
	}

	mobilityTerm := Value(5 * ((mobility[Red] + mobility[Yellow]) - (mobility[Blue] + mobility[Green])))

	activationRY := activationScore(activated[Red], activated[Yellow])
	activationBG := activationScore(activated[Blue], activated[Green])
	activationTerm := Value(activationRY - activationBG)

	imbalanceRY := imbalancePenalty(majors[Red], majors[Yellow])
	imbalanceBG := imbalancePenalty(majors[Blue], majors[Green])
	imbalanceTerm := Value(imbalanceRY - imbalanceBG)

	total := partial.Add(Score{Mid: mobilityTerm + activationTerm + imbalanceTerm, End: mobilityTerm + activationTerm + imbalanceTerm})
	v := total.ValueFromScore(gpf)
	if us == TeamBlueGreen {
		v = -v
	}

	if e.UsePawnStructure {
		v += e.pawnStructureTerm(p, us) - e.pawnStructureTerm(p, us.Other())
	}
	return v
}

func clampValue(v, alpha, beta Value) Value {
	if v < alpha {
		return alpha
	}
	if v > beta {
		return beta
	}
	return v
}

// colorTerms sums material, PST and king safety for one color's pieces, as
// a tapered Score. Mobility, activation and imbalance are team-level terms
// computed once in Evaluate instead of per color.
func colorTerms(p *board.Position, c Color) Score {
	var s Score
	for pt := Pawn; pt <= King; pt++ {
		for _, sq := range p.Pieces(c, pt) {
			s = s.Add(Score{Mid: pt.ValueOf(), End: pt.ValueOf()})
			s = s.Add(pstValue(c, pt, sq))
		}
	}
	s = s.Add(kingSafetyTerm(p, c))
	s = s.Add(knightReachBonus(p, c))
	return s
}

// gamePhaseFactor estimates how far the game is from the opening, in
// [0,1], from total non-pawn-non-king material still on the board, the
// same shape as the teacher's GamePhaseFactor.
func gamePhaseFactor(p *board.Position) float64 {
	const maxPhaseMaterial = 4 * (2*ValueRook + 2*ValueBishop + 2*ValueKnight + ValueQueen)
	var total Value
	for c := Red; c <= Green; c++ {
		if p.IsEliminated(c) {
			continue
		}
		for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
			total += Value(len(p.Pieces(c, pt))) * pt.ValueOf()
		}
	}
	f := float64(total) / float64(maxPhaseMaterial)
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// pseudoLegalMoveCount is spec.md §4.5 term 3's mobility measure: the
// literal pseudo-legal move count for color c, generated with the same
// movegen.GenerateColor the search itself calls, not an approximation.
func (e *Evaluator) pseudoLegalMoveCount(p *board.Position, c Color) int {
	e.scratch.Clear()
	movegen.GenerateColor(p, c, movegen.GenAll, e.scratch)
	return e.scratch.Len()
}

// activationThreshold is spec.md §4.5 term 4's per-kind move-count floor a
// piece must meet to count as "activated".
func activationThreshold(pt PieceType) int {
	switch pt {
	case Knight:
		return 3
	case Bishop, Rook, Queen:
		return 5
	}
	return 1<<31 - 1
}

// pieceMobilityCount counts sq's own pseudo-legal destinations: the ray
// walk for sliders, the eight knight hops filtered by board legality and
// friendly occupation. Used only to test a single piece's activation
// threshold, not for the team-wide mobility term above.
func pieceMobilityCount(p *board.Position, c Color, pt PieceType, sq Square) int {
	count := 0
	switch pt {
	case Knight:
		for _, off := range KnightOffsets {
			to := SquareOf(sq.Row()+off[0], sq.Col()+off[1])
			if to != SqNone && (p.PieceAt(to) == PieceNone || p.PieceAt(to).Color() != c) {
				count++
			}
		}
	case Bishop, Rook, Queen:
		for _, d := range sliderDirs(pt) {
			cur := sq
			for {
				cur = cur.To(d)
				if cur == SqNone {
					break
				}
				occ := p.PieceAt(cur)
				if occ != PieceNone && occ.Color() == c {
					break
				}
				count++
				if occ != PieceNone {
					break
				}
			}
		}
	}
	return count
}

func sliderDirs(pt PieceType) []Direction {
	switch pt {
	case Bishop:
		return []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	case Rook:
		return []Direction{North, South, East, West}
	default:
		return RayDirections[:]
	}
}

// activatedPieceCount counts color c's queens/bishops/rooks/knights that
// have met their activation threshold, with knights additionally required
// to have left their own back rank (spec.md §4.5 term 4).
func activatedPieceCount(p *board.Position, c Color) int {
	n := 0
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		threshold := activationThreshold(pt)
		for _, sq := range p.Pieces(c, pt) {
			if pt == Knight && ownBackRank(c, sq) {
				continue
			}
			if pieceMobilityCount(p, c, pt, sq) >= threshold {
				n++
			}
		}
	}
	return n
}

// activationScore is spec.md §4.5 term 4's per-team formula, n1/n2 being
// the activated-piece counts of the two teammates.
func activationScore(n1, n2 int) int {
	return 25*(n1+n2) + 15*n1*n2
}

// majorPieceCount counts color c's non-pawn, non-king pieces, the "major"
// count spec.md §4.5 term 7's imbalance penalty is keyed on.
func majorPieceCount(p *board.Position, c Color) int {
	n := 0
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		n += len(p.Pieces(c, pt))
	}
	return n
}

// imbalancePenaltyTable is the monotone-decreasing penalty vector spec.md
// §4.5 term 7 names (0, -25, -50, -150, -300, -350, -400, ...); diffs past
// the table's length clamp to its last entry.
var imbalancePenaltyTable = []int{0, -25, -50, -150, -300, -350, -400, -450}

func imbalancePenalty(a, b int) int {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if diff >= len(imbalancePenaltyTable) {
		diff = len(imbalancePenaltyTable) - 1
	}
	return imbalancePenaltyTable[diff]
}

// ownBackRank reports whether sq is color c's own starting back rank/file
// (GLOSSARY: row 0 yellow, row 13 red, col 0 blue, col 13 green).
func ownBackRank(c Color, sq Square) bool {
	switch c {
	case Yellow:
		return sq.Row() == 0
	case Red:
		return sq.Row() == BoardDim-1
	case Blue:
		return sq.Col() == 0
	case Green:
		return sq.Col() == BoardDim-1
	}
	return false
}

// backwardStep returns the unit (dRow, dCol) vector pointing from a color's
// forward/advance axis back toward its own back rank: the opposite of
// attacks.PawnAdvanceDir.
func backwardStep(c Color) (int, int) {
	fr, fc := attacks.PawnAdvanceDir(c)
	return -fr, -fc
}

// kingShieldCount is spec.md §4.5 term 5(a)'s pawn-shield check: how many
// of the three squares behind the king (one step back, and the two
// back-diagonals), allowing a piece one further step back to still count
// ("within two steps"), are occupied by a same-color piece.
func kingShieldCount(p *board.Position, c Color, ks Square) int {
	br, bc := backwardStep(c)
	var pr, pc int
	if br != 0 {
		pr, pc = 0, 1
	} else {
		pr, pc = 1, 0
	}
	offsets := [3][2]int{{br, bc}, {br + pr, bc + pc}, {br - pr, bc - pc}}
	count := 0
	for _, off := range offsets {
		one := SquareOf(ks.Row()+off[0], ks.Col()+off[1])
		two := SquareOf(ks.Row()+2*off[0], ks.Col()+2*off[1])
		if (one != SqNone && p.PieceAt(one).Color() == c && one != SqNone) ||
			(two != SqNone && p.PieceAt(two).Color() == c) {
			count++
		}
	}
	return count
}

// kingAttackerValue is spec.md §4.5 term 5(b)'s per-kind attacker-value
// table.
func kingAttackerValue(pt PieceType) int {
	switch pt {
	case Pawn:
		return 25
	case Knight, Bishop:
		return 30
	case Rook:
		return 40
	case Queen:
		return 50
	}
	return 0
}

// kingAttackWeight is spec.md §4.5 term 5(b)'s attacker-count weight
// curve, indexed by the number of attackers on one king-zone square
// (capped at 8+).
var kingAttackWeight = [9]int{0, 50, 100, 120, 150, 200, 250, 300, 400}

// kingZonePenalty sums spec.md §4.5 term 5(b) over the eight squares
// around color c's king, skipping squares off the board or on c's own
// back rank.
func kingZonePenalty(p *board.Position, c Color, ks Square) int {
	penalty := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			sq := SquareOf(ks.Row()+dr, ks.Col()+dc)
			if sq == SqNone || ownBackRank(c, sq) {
				continue
			}
			valueSum := 0
			attackerCount := 0
			var seenColors [ColorLength]bool
			for attacker := c.Next(); attacker != c; attacker = attacker.Next() {
				if p.IsEliminated(attacker) || attacker.Team() == c.Team() {
					continue
				}
				atks := attacks.Attackers(p, sq, attacker)
				if len(atks) == 0 {
					continue
				}
				seenColors[attacker] = true
				for _, from := range atks {
					valueSum += kingAttackerValue(p.PieceAt(from).Type())
					attackerCount++
				}
			}
			if attackerCount > 8 {
				attackerCount = 8
			}
			penalty += valueSum * kingAttackWeight[attackerCount] / 100
			distinctColors := 0
			for _, seen := range seenColors {
				if seen {
					distinctColors++
				}
			}
			if distinctColors >= 2 {
				penalty += 150
			}
		}
	}
	return penalty
}

// kingSafetyTerm combines the shield and king-zone-attack subterms of
// spec.md §4.5 term 5 into one tapered Score for color c.
func kingSafetyTerm(p *board.Position, c Color) Score {
	ks := p.KingSquare(c)
	if ks == SqNone {
		return Score{}
	}

	penalty := 0
	shieldThin := kingShieldCount(p, c, ks) < 3
	offBackRank := !ownBackRank(c, ks)
	if shieldThin {
		penalty += 30
	}
	if offBackRank {
		penalty += 30
	}
	if shieldThin && offBackRank {
		penalty += 30
	}
	penalty += kingZonePenalty(p, c, ks)

	v := Value(-penalty)
	return Score{Mid: v, End: v / 2}
}

// knightReachBonus is spec.md §4.5 term 6: +100 if one of color c's
// knights can reach either enemy-team king's square in exactly two knight
// moves.
func knightReachBonus(p *board.Position, c Color) Score {
	for target := Red; target <= Green; target++ {
		if target.Team() == c.Team() || p.IsEliminated(target) {
			continue
		}
		ks := p.KingSquare(target)
		if ks == SqNone {
			continue
		}
		for _, sq := range p.Pieces(c, Knight) {
			if knightReachesInTwo(sq, ks) {
				return Score{Mid: 100, End: 100}
			}
		}
	}
	return Score{}
}

// knightReachesInTwo reports whether a knight on from can reach to in
// exactly two knight hops, trying every legal intermediate square.
func knightReachesInTwo(from, to Square) bool {
	for _, off1 := range KnightOffsets {
		mid := SquareOf(from.Row()+off1[0], from.Col()+off1[1])
		if mid == SqNone {
			continue
		}
		for _, off2 := range KnightOffsets {
			if SquareOf(mid.Row()+off2[0], mid.Col()+off2[1]) == to {
				return true
			}
		}
	}
	return false
}
