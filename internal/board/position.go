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

// Package board implements the mutate-in-place Position type for the
// four-player, 14x14, corner-truncated cross board: the piece grid, piece
// lists, incremental Zobrist hash and make/unmake move stack. It plays the
// role the teacher's internal/position package plays for the 8x8 game, but
// replaces bitboard occupancy with a grid-and-piece-list representation
// since 160 irregular squares do not fit a 64-bit word (see DESIGN.md).
package board

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/fourplayerchess/engine/internal/types"
)

// StartFen is the four-player starting position in this engine's FEN
// dialect: 7 dash-separated fields (turn-eliminated-kingside-queenside-
// points-halfmove-placement). Ranks run top (row 0, Yellow's back rank)
// to bottom (row 13, Red's back rank), matching original_source/board.cc's
// CreateStandardSetup: each color's own back rank sits on its own arm only
// (Red row13, Yellow row0, Blue col0, Green col13 cols/rows 3-10) — the
// four 3x3 corners are marked "x" and never carry a piece.
const StartFen = "R-0,0,0,0-1,1,1,1-1,1,1,1-0,0,0,0-0-" +
	"x,x,x,yR,yN,yB,yK,yQ,yB,yN,yR,x,x,x/" +
	"x,x,x,yP,yP,yP,yP,yP,yP,yP,yP,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"bR,bP,10,gP,gR/" +
	"bN,bP,10,gP,gN/" +
	"bB,bP,10,gP,gB/" +
	"bQ,bP,10,gP,gK/" +
	"bK,bP,10,gP,gQ/" +
	"bB,bP,10,gP,gB/" +
	"bN,bP,10,gP,gN/" +
	"bR,bP,10,gP,gR/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,rP,rP,rP,rP,rP,rP,rP,rP,x,x,x/" +
	"x,x,x,rR,rN,rB,rQ,rK,rB,rN,rR,x,x,x"

// EnPassantInit records a pending en-passant capture target, set for one
// ply after a pawn's initial two-square advance and cleared afterward.
// Mirrors original_source/board.h's EnpassantInitialization.
type EnPassantInit struct {
	PassedSquare Square // the square the pawn skipped over (capturable target)
	PawnSquare   Square // the pawn's actual resting square
}

// undoState captures everything DoMove needs to reverse a ply that cannot
// be recovered from the Move value alone: the prior hash/clock/ep/rights
// and, for castling eliminations, which king squares changed.
type undoState struct {
	move           Move
	zobrist        Key
	castling       CastlingRights
	enPassant      EnPassantInit
	halfMoveClock  int
	eliminated     [4]bool
	kingSquare     [4]Square
}

// Position is the mutable board state: piece placement, whose turn it is,
// castling/en-passant state, and enough history to undo any move made
// through DoMove/DoNullMove.
type Position struct {
	squares    [SqLength]Piece
	pieceList  [4][7][]Square // [color][pieceType] -> sorted square list
	kingSquare [4]Square
	eliminated [4]bool // true once a color's king has been captured

	turn          Color
	castling      CastlingRights
	enPassant     EnPassantInit
	halfMoveClock int
	fullMoveScore [4]Value // eliminated colors' points, per spec.md scoring rule

	zobristKey Key
	history    []undoState
}

// NewPosition creates a position from a FEN string in this engine's dialect.
// An empty string yields the standard starting position.
func NewPosition(fen string) *Position {
	if fen == "" {
		fen = StartFen
	}
	p := &Position{}
	for c := Red; c <= Green; c++ {
		p.kingSquare[c] = SqNone
	}
	p.enPassant = EnPassantInit{PassedSquare: SqNone, PawnSquare: SqNone}
	if err := p.setupFen(fen); err != nil {
		panic(fmt.Sprintf("board: invalid fen %q: %v", fen, err))
	}
	return p
}

// Clone returns a deep, independent copy for use by a Lazy-SMP worker.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]undoState(nil), p.history...)
	for color := Red; color <= Green; color++ {
		for pt := Pawn; pt <= King; pt++ {
			c.pieceList[color][pt] = append([]Square(nil), p.pieceList[color][pt]...)
		}
	}
	return &c
}

// Turn returns the color to move.
func (p *Position) Turn() Color { return p.turn }

// ZobristKey returns the incremental hash of the current position.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// PieceAt returns the piece occupying sq, or PieceNone if empty/off-board.
func (p *Position) PieceAt(sq Square) Piece {
	if sq >= SqLength {
		return PieceNone
	}
	return p.squares[sq]
}

// KingSquare returns the square of c's king, or SqNone once that king has
// been captured.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// IsEliminated reports whether color c's king has already been captured.
func (p *Position) IsEliminated(c Color) bool { return p.eliminated[c] }

// CastlingRights returns the current castling-rights byte.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassant returns the pending en-passant target, if any.
func (p *Position) EnPassant() EnPassantInit { return p.enPassant }

// HalfMoveClock returns the number of plies since the last pawn move or capture.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// Pieces returns the sorted list of squares occupied by color c's pieces of
// kind pt. The slice is owned by the position; callers must not mutate it.
func (p *Position) Pieces(c Color, pt PieceType) []Square { return p.pieceList[c][pt] }

// Material returns the raw material sum (centipawns) for color c's pieces
// currently on the board.
func (p *Position) Material(c Color) Value {
	var v Value
	for pt := Pawn; pt <= King; pt++ {
		v += Value(len(p.pieceList[c][pt])) * pt.ValueOf()
	}
	return v
}

// LastMove returns the most recently made move, or MoveNone at the root.
func (p *Position) LastMove() Move {
	if len(p.history) == 0 {
		return MoveNone
	}
	return p.history[len(p.history)-1].move
}

func (p *Position) addPiece(c Color, pt PieceType, sq Square) {
	pc := MakePiece(c, pt)
	p.squares[sq] = pc
	p.pieceList[c][pt] = insertSorted(p.pieceList[c][pt], sq)
	p.zobristKey ^= pieceKey(pc, sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
}

func (p *Position) removePiece(c Color, pt PieceType, sq Square) {
	pc := MakePiece(c, pt)
	p.squares[sq] = PieceNone
	p.pieceList[c][pt] = removeSorted(p.pieceList[c][pt], sq)
	p.zobristKey ^= pieceKey(pc, sq)
	if pt == King {
		p.kingSquare[c] = SqNone
	}
}

func (p *Position) movePieceOnBoard(c Color, pt PieceType, from, to Square) {
	p.removePiece(c, pt, from)
	p.addPiece(c, pt, to)
}

func insertSorted(list []Square, sq Square) []Square {
	i := 0
	for i < len(list) && list[i] < sq {
		i++
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = sq
	return list
}

func removeSorted(list []Square, sq Square) []Square {
	for i, s := range list {
		if s == sq {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// DoMove applies m to the position, pushing enough state onto the history
// stack for a matching UndoMove to reverse it exactly, including the
// Zobrist hash, castling rights, en-passant target, half-move clock and
// elimination status.
func (p *Position) DoMove(m Move) {
	st := undoState{
		move:          m,
		zobrist:       p.zobristKey,
		castling:      p.castling,
		enPassant:     p.enPassant,
		halfMoveClock: p.halfMoveClock,
		eliminated:    p.eliminated,
		kingSquare:    p.kingSquare,
	}
	p.history = append(p.history, st)

	mover := m.Moved
	color := mover.Color()
	pt := mover.Type()

	p.zobristKey ^= epKey(p.enPassantTargetForHash())
	p.zobristKey ^= castlingKey(p.castling)

	if m.IsCapture() {
		capColor := m.Captured.Color()
		p.removePiece(capColor, m.Captured.Type(), m.CapturedSq)
		if m.Captured.Type() == King {
			p.eliminated[capColor] = true
			p.castling = p.castling.RemoveAllFor(capColor)
		}
		p.halfMoveClock = 0
	} else if pt == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.movePieceOnBoard(color, pt, m.From, m.To)

	if m.IsPromotion() {
		p.removePiece(color, Pawn, m.To)
		p.addPiece(color, m.Promotion, m.To)
	}

	if m.IsCastling {
		p.movePieceOnBoard(color, Rook, m.RookFrom, m.RookTo)
	}

	// The move generator computes RightsAfter; DoMove just applies it. The
	// generator clears a color's bits when its king moves or castles and
	// when its king is captured. A rook that moves or is captured leaves the
	// bits unchanged; castling generation requires the rook on its home square.
	p.castling = m.RightsAfter

	p.enPassant = EnPassantInit{PassedSquare: SqNone, PawnSquare: SqNone}
	if pt == Pawn {
		dr := m.To.Row() - m.From.Row()
		dc := m.To.Col() - m.From.Col()
		if dr == 2 || dr == -2 || dc == 2 || dc == -2 {
			mid := SquareOf((m.From.Row()+m.To.Row())/2, (m.From.Col()+m.To.Col())/2)
			p.enPassant = EnPassantInit{PassedSquare: mid, PawnSquare: m.To}
		}
	}

	p.zobristKey ^= castlingKey(p.castling)
	p.zobristKey ^= epKey(p.enPassantTargetForHash())
	p.zobristKey ^= turnKey(p.turn)
	p.turn = p.turn.Next()
	p.zobristKey ^= turnKey(p.turn)
}

// UndoMove reverses the most recent DoMove/DoNullMove call.
func (p *Position) UndoMove() {
	n := len(p.history) - 1
	st := p.history[n]
	p.history = p.history[:n]
	m := st.move

	p.turn = p.turn.Prior()

	if m.IsNone() {
		p.castling = st.castling
		p.enPassant = st.enPassant
		p.halfMoveClock = st.halfMoveClock
		p.eliminated = st.eliminated
		p.kingSquare = st.kingSquare
		p.zobristKey = st.zobrist
		return
	}

	color := m.Moved.Color()
	pt := m.Moved.Type()

	if m.IsCastling {
		p.squares[m.RookTo] = PieceNone
		p.pieceList[color][Rook] = removeSorted(p.pieceList[color][Rook], m.RookTo)
		p.squares[m.RookFrom] = MakePiece(color, Rook)
		p.pieceList[color][Rook] = insertSorted(p.pieceList[color][Rook], m.RookFrom)
	}

	if m.IsPromotion() {
		p.squares[m.To] = PieceNone
		p.pieceList[color][m.Promotion] = removeSorted(p.pieceList[color][m.Promotion], m.To)
	} else {
		p.squares[m.To] = PieceNone
		p.pieceList[color][pt] = removeSorted(p.pieceList[color][pt], m.To)
	}
	p.squares[m.From] = m.Moved
	p.pieceList[color][pt] = insertSorted(p.pieceList[color][pt], m.From)

	if m.IsCapture() {
		p.squares[m.CapturedSq] = m.Captured
		p.pieceList[m.Captured.Color()][m.Captured.Type()] = insertSorted(p.pieceList[m.Captured.Color()][m.Captured.Type()], m.CapturedSq)
	}

	p.castling = st.castling
	p.enPassant = st.enPassant
	p.halfMoveClock = st.halfMoveClock
	p.eliminated = st.eliminated
	p.kingSquare = st.kingSquare
	p.zobristKey = st.zobrist
}

// DoNullMove passes the turn without moving a piece, clearing en passant.
// Used by null-move pruning in search.
func (p *Position) DoNullMove() {
	st := undoState{
		move:          MoveNone,
		zobrist:       p.zobristKey,
		castling:      p.castling,
		enPassant:     p.enPassant,
		halfMoveClock: p.halfMoveClock,
		eliminated:    p.eliminated,
		kingSquare:    p.kingSquare,
	}
	p.history = append(p.history, st)
	p.zobristKey ^= epKey(p.enPassantTargetForHash())
	p.enPassant = EnPassantInit{PassedSquare: SqNone, PawnSquare: SqNone}
	p.zobristKey ^= epKey(p.enPassantTargetForHash())
	p.zobristKey ^= turnKey(p.turn)
	p.turn = p.turn.Next()
	p.zobristKey ^= turnKey(p.turn)
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.UndoMove()
}

func (p *Position) enPassantTargetForHash() Square {
	return p.enPassant.PassedSquare
}

// String renders the board as a 14-row ASCII grid for debugging/logging.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < BoardDim; row++ {
		sb.WriteString(fmt.Sprintf("%2d ", BoardDim-row))
		for col := 0; col < BoardDim; col++ {
			sq := SquareOf(row, col)
			if sq == SqNone {
				sb.WriteString(" . ")
				continue
			}
			pc := p.squares[sq]
			if pc == PieceNone {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(fmt.Sprintf("%2s ", pc.String()))
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    ")
	for col := 0; col < BoardDim; col++ {
		sb.WriteString(fmt.Sprintf(" %c ", colLettersByte(col)))
	}
	sb.WriteString(fmt.Sprintf("\nturn=%s castling=%s ep=%s halfmove=%d\n", p.turn, p.castling, p.enPassant.PassedSquare, p.halfMoveClock))
	return sb.String()
}

func colLettersByte(col int) byte {
	return "abcdefghijklmn"[col]
}

// fourBits renders four per-color ints as the comma-separated R,B,Y,G field
// spec.md §6.2 specifies for eliminated/kingside/queenside/points.
func fourBits(vals [4]int) string {
	parts := make([]string, 4)
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// StringFen renders the position back into this engine's FEN dialect.
func (p *Position) StringFen() string {
	var sb strings.Builder
	sb.WriteString(p.turn.String()[:1])
	sb.WriteString("-")

	var elim, ks, qs, pts [4]int
	for c := Red; c <= Green; c++ {
		if p.eliminated[c] {
			elim[c] = 1
		}
		if p.castling.Has(c, true) {
			ks[c] = 1
		}
		if p.castling.Has(c, false) {
			qs[c] = 1
		}
		pts[c] = int(p.fullMoveScore[c])
	}
	sb.WriteString(fourBits(elim))
	sb.WriteString("-")
	sb.WriteString(fourBits(ks))
	sb.WriteString("-")
	sb.WriteString(fourBits(qs))
	sb.WriteString("-")
	sb.WriteString(fourBits(pts))
	sb.WriteString("-")
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteString("-")
	for row := 0; row < BoardDim; row++ {
		if row > 0 {
			sb.WriteString("/")
		}
		empty := 0
		needComma := false
		flushEmpty := func() {
			if empty > 0 {
				if needComma {
					sb.WriteString(",")
				}
				sb.WriteString(strconv.Itoa(empty))
				needComma = true
				empty = 0
			}
		}
		for col := 0; col < BoardDim; col++ {
			sq := SquareOf(row, col)
			if sq == SqNone {
				flushEmpty()
				if needComma {
					sb.WriteString(",")
				}
				sb.WriteString("x")
				needComma = true
				continue
			}
			pc := p.squares[sq]
			if pc == PieceNone {
				empty++
				continue
			}
			flushEmpty()
			if needComma {
				sb.WriteString(",")
			}
			sb.WriteString(fenColorLetter(pc.Color()) + pc.Type().String())
			needComma = true
		}
		flushEmpty()
	}
	return sb.String()
}

func fenColorLetter(c Color) string {
	return [...]string{"r", "b", "y", "g"}[c]
}
