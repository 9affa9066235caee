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

package movegen

import (
	"strings"

	"github.com/fourplayerchess/engine/internal/board"
	. "github.com/fourplayerchess/engine/internal/types"
)

// FromUci generates all legal moves for p and matches uciMove against their
// wire notation, the same brute-force approach as the teacher's
// GetMoveFromUci: not cheap, but only ever called once per "position ...
// moves" token, never from inside search. Returns MoveNone on no match.
// Promotion letters are accepted case-insensitively since many UCI front
// ends send them lower-case despite the protocol asking for upper-case.
func FromUci(p *board.Position, uciMove string) Move {
	want := strings.ToLower(strings.TrimSpace(uciMove))
	buf := NewMoveList(MovesPerPartition)
	for _, m := range LegalMoves(p, buf) {
		if strings.ToLower(m.StringUci()) == want {
			return m
		}
	}
	return MoveNone
}
