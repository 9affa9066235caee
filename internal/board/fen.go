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

package board

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/fourplayerchess/engine/internal/types"
)

var colorFromLetter = map[byte]Color{'r': Red, 'b': Blue, 'y': Yellow, 'g': Green}

// parseFourBits parses a comma-separated list of exactly 4 integers, in
// R,B,Y,G order, as spec.md §6.2 requires for the eliminated/kingside/
// queenside/points fields (e.g. "0,0,0,0" or "1,1,1,1").
func parseFourBits(field, name string) ([4]int, error) {
	var out [4]int
	parts := strings.Split(field, ",")
	if len(parts) != 4 {
		return out, fmt.Errorf("%s field must have 4 comma-separated values, got %q", name, field)
	}
	for i, s := range parts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return out, fmt.Errorf("bad %s value %q: %w", name, s, err)
		}
		out[i] = n
	}
	return out, nil
}

// setupFen parses the engine's 7-field FEN dialect:
//
//	turn-eliminated-kingside-queenside-points-halfmove-placement
//
// "turn" is a single color letter (R/B/Y/G). "eliminated", "kingside",
// "queenside" and "points" are each a comma list of 4 values in R,B,Y,G
// order (spec.md §6.2) — 0/1 bits for the first three, an accumulated
// elimination-bonus score for "points". "halfmove" is the 50-move-rule
// counter. "placement" is the board itself, 14 ranks separated by '/',
// row 0 first (Yellow's back rank) down to row 13 (Red's back rank),
// matching original_source/board.cc's raw row order; Position.String
// prints it flipped, rank 14 at the top.
func (p *Position) setupFen(fen string) error {
	fields := strings.SplitN(fen, "-", 7)
	if len(fields) != 7 {
		return fmt.Errorf("expected 7 dash-separated fields, got %d", len(fields))
	}
	turnField, elimField, ksField, qsField, ptsField, halfmoveField, placement := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6]

	if len(turnField) < 1 {
		return fmt.Errorf("empty turn field")
	}
	c, ok := colorFromLetter[strings.ToLower(turnField)[0]]
	if !ok {
		return fmt.Errorf("bad turn color %q", turnField)
	}
	p.turn = c

	elim, err := parseFourBits(elimField, "eliminated")
	if err != nil {
		return err
	}
	for i, v := range elim {
		p.eliminated[i] = v != 0
	}

	ks, err := parseFourBits(ksField, "kingside")
	if err != nil {
		return err
	}
	qs, err := parseFourBits(qsField, "queenside")
	if err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		col := Color(i)
		if ks[i] != 0 {
			p.castling = p.castling.Set(col, true)
		}
		if qs[i] != 0 {
			p.castling = p.castling.Set(col, false)
		}
	}

	pts, err := parseFourBits(ptsField, "points")
	if err != nil {
		return err
	}
	for i, v := range pts {
		p.fullMoveScore[i] = Value(v)
	}

	hm, err := strconv.Atoi(halfmoveField)
	if err != nil {
		return fmt.Errorf("bad halfmove field %q: %w", halfmoveField, err)
	}
	p.halfMoveClock = hm

	rows := strings.Split(placement, "/")
	if len(rows) != BoardDim {
		return fmt.Errorf("placement must have %d ranks, got %d", BoardDim, len(rows))
	}
	for row, rowStr := range rows {
		col := 0
		tokens := strings.Split(rowStr, ",")
		for _, tok := range tokens {
			if tok == "" {
				continue
			}
			if strings.EqualFold(tok, "x") {
				// corner/illegal square: count 1, never carries a piece.
				col++
				continue
			}
			if n, err := strconv.Atoi(tok); err == nil {
				col += n
				continue
			}
			if len(tok) < 2 {
				return fmt.Errorf("bad placement token %q", tok)
			}
			colorLetter := tok[0]
			kindLetter := tok[1:]
			col2, ok := colorFromLetter[colorLetter]
			if !ok {
				return fmt.Errorf("bad color letter in token %q", tok)
			}
			pt := PieceTypeFromChar(kindLetter)
			if pt == PtNone {
				return fmt.Errorf("bad piece letter in token %q", tok)
			}
			sq := SquareOf(row, col)
			if sq == SqNone {
				return fmt.Errorf("token %q lands on illegal square (row %d col %d)", tok, row, col)
			}
			p.addPiece(col2, pt, sq)
			col++
		}
	}

	p.zobristKey ^= turnKey(p.turn)
	p.zobristKey ^= castlingKey(p.castling)
	p.zobristKey ^= epKey(SqNone)
	return nil
}
