// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package board decodes the text rows of a Sokoban level into squares.
//
// Legend:
//
//	#        wall
//	@ p      pusher
//	+ P      pusher on goal
//	$ b      box
//	* B      box on goal
//	.        goal
//	space - _ floor
//	|        row separator
package board

import (
	"strings"

	"github.com/pdiddy/sokoban-slc/pkg/types"
)

// Square is a board position; X grows rightwards, Y downwards.
type Square struct {
	X, Y int
}

// InvalidSquare records a character outside the legend.
type InvalidSquare struct {
	Square
	Char rune
}

// Board is a decoded level.
type Board struct {
	Width  int
	Height int
	Player *Square

	Walls  map[Square]struct{}
	Floors map[Square]struct{}
	Goals  map[Square]struct{}
	Boxes  map[Square]struct{}

	Invalid []InvalidSquare
}

func newBoard() Board {
	return Board{
		Walls:  make(map[Square]struct{}),
		Floors: make(map[Square]struct{}),
		Goals:  make(map[Square]struct{}),
		Boxes:  make(map[Square]struct{}),
	}
}

// Parse decodes rows of level text. Each row starts at X 0; a '|' or '\n'
// inside a row starts a new one. Unknown characters are recorded in Invalid
// and still occupy a column. Height counts rows up to the last one that holds
// any square, so trailing empty rows are not part of the board.
func Parse(rows []string) Board {
	b := newBoard()
	y := 0
	for _, row := range rows {
		x := 0
		for _, c := range row {
			if c == '|' || c == '\n' {
				b.Width = max(b.Width, x)
				x = 0
				y++
				continue
			}
			sq := Square{x, y}
			switch c {
			case '#':
				b.Walls[sq] = struct{}{}
			case '@', 'p':
				b.setPlayer(sq)
				b.Floors[sq] = struct{}{}
			case '+', 'P':
				b.setPlayer(sq)
				b.Goals[sq] = struct{}{}
				b.Floors[sq] = struct{}{}
			case '$', 'b':
				b.Boxes[sq] = struct{}{}
				b.Floors[sq] = struct{}{}
			case '*', 'B':
				b.Boxes[sq] = struct{}{}
				b.Goals[sq] = struct{}{}
				b.Floors[sq] = struct{}{}
			case '.':
				b.Goals[sq] = struct{}{}
				b.Floors[sq] = struct{}{}
			case ' ', '-', '_':
				b.Floors[sq] = struct{}{}
			default:
				b.Invalid = append(b.Invalid, InvalidSquare{Square: sq, Char: c})
			}
			x++
			b.Height = y + 1
		}
		b.Width = max(b.Width, x)
		y++
	}
	return b
}

// setPlayer keeps the last pusher seen, as a level has only one.
func (b *Board) setPlayer(sq Square) {
	p := sq
	b.Player = &p
}

// Stats summarizes the board.
func (b Board) Stats() types.BoardStats {
	solved := len(b.Boxes) > 0
	for sq := range b.Boxes {
		if _, ok := b.Goals[sq]; !ok {
			solved = false
			break
		}
	}
	return types.BoardStats{
		Width:     b.Width,
		Height:    b.Height,
		Walls:     len(b.Walls),
		Floors:    len(b.Floors),
		Boxes:     len(b.Boxes),
		Goals:     len(b.Goals),
		HasPlayer: b.Player != nil,
		Balanced:  len(b.Boxes) == len(b.Goals),
		Solved:    solved,
		Invalid:   len(b.Invalid),
	}
}

// String renders the board in canonical notation. Every square that is not
// floor, including one beyond the rightmost and bottom floor, is drawn as a
// wall. An empty board renders as "".
func (b Board) String() string {
	if len(b.Floors) == 0 {
		return ""
	}
	xMax, yMax := 0, 0
	for sq := range b.Floors {
		xMax = max(xMax, sq.X)
		yMax = max(yMax, sq.Y)
	}

	var sb strings.Builder
	for y := 0; y <= yMax+1; y++ {
		for x := 0; x <= xMax+1; x++ {
			sb.WriteByte(b.glyph(Square{x, y}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) glyph(sq Square) byte {
	_, goal := b.Goals[sq]
	_, box := b.Boxes[sq]
	_, floor := b.Floors[sq]
	player := b.Player != nil && *b.Player == sq

	switch {
	case player && goal:
		return '+'
	case player:
		return '@'
	case box && goal:
		return '*'
	case goal:
		return '.'
	case box:
		return '$'
	case floor:
		return ' '
	}
	return '#'
}
