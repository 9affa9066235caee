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

// Package types holds the small value types shared by every other package:
// colors, piece kinds, pieces, squares, directions, castling rights and
// search values for the four-player cross board.
package types

// Color identifies one of the four seats at the board. Turn order is always
// Red -> Blue -> Yellow -> Green -> Red.
type Color uint8

const (
	Red Color = iota
	Blue
	Yellow
	Green
	ColorNone
	ColorLength = 4
)

var colorStrings = [...]string{"Red", "Blue", "Yellow", "Green", "-"}

// String returns the color's name or "-" for ColorNone.
func (c Color) String() string {
	if c > Green {
		return "-"
	}
	return colorStrings[c]
}

// IsValid reports whether c is one of the four seated colors.
func (c Color) IsValid() bool {
	return c <= Green
}

// Next returns the color that moves after c in turn order.
func (c Color) Next() Color {
	return (c + 1) % ColorLength
}

// Prior returns the color that moved before c in turn order.
func (c Color) Prior() Color {
	return (c + ColorLength - 1) % ColorLength
}

// Team returns the team c belongs to. Red/Yellow are partners against Blue/Green.
func (c Color) Team() Team {
	if c == Red || c == Yellow {
		return TeamRedYellow
	}
	return TeamBlueGreen
}

// TeammateOf returns the color sharing c's team.
func (c Color) TeammateOf() Color {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	case Blue:
		return Green
	case Green:
		return Blue
	}
	return ColorNone
}

// Team identifies one of the two partnerships that play the game.
type Team uint8

const (
	TeamRedYellow Team = iota
	TeamBlueGreen
	TeamNone
)

func (t Team) String() string {
	switch t {
	case TeamRedYellow:
		return "Red/Yellow"
	case TeamBlueGreen:
		return "Blue/Green"
	}
	return "-"
}

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == TeamRedYellow {
		return TeamBlueGreen
	}
	return TeamRedYellow
}
