// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sokoban-slc/pkg/types"
)

func TestParseStats(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want types.BoardStats
	}{
		{
			name: "single corridor",
			rows: []string{"#####", "#@$.#", "#####"},
			want: types.BoardStats{
				Width: 5, Height: 3, Walls: 12, Floors: 3, Boxes: 1, Goals: 1,
				HasPlayer: true, Balanced: true,
			},
		},
		{
			name: "already solved",
			rows: []string{"####", "#*@#", "####"},
			want: types.BoardStats{
				Width: 4, Height: 3, Walls: 10, Floors: 2, Boxes: 1, Goals: 1,
				HasPlayer: true, Balanced: true, Solved: true,
			},
		},
		{
			name: "alternate notation",
			rows: []string{"#P-b_B#"},
			want: types.BoardStats{
				Width: 7, Height: 1, Walls: 2, Floors: 5, Boxes: 2, Goals: 2,
				HasPlayer: true, Balanced: true,
			},
		},
		{
			name: "unbalanced without player",
			rows: []string{"#$$.#"},
			want: types.BoardStats{
				Width: 5, Height: 1, Walls: 2, Floors: 3, Boxes: 2, Goals: 1,
			},
		},
		{
			name: "pipe separates rows",
			rows: []string{"#@|#.$"},
			want: types.BoardStats{
				Width: 3, Height: 2, Walls: 2, Floors: 3, Boxes: 1, Goals: 1,
				HasPlayer: true, Balanced: true,
			},
		},
		{
			name: "newline separates rows",
			rows: []string{"#@\n#."},
			want: types.BoardStats{
				Width: 2, Height: 2, Walls: 2, Floors: 2, Goals: 1,
				HasPlayer: true,
			},
		},
		{
			name: "trailing pipe adds no row",
			rows: []string{"###|"},
			want: types.BoardStats{Width: 3, Height: 1, Walls: 3, Balanced: true},
		},
		{
			name: "trailing empty rows ignored",
			rows: []string{"#.$", "", ""},
			want: types.BoardStats{
				Width: 3, Height: 1, Walls: 1, Floors: 2, Boxes: 1, Goals: 1,
				Balanced: true,
			},
		},
		{
			name: "empty row inside the board kept",
			rows: []string{"#", "", "#"},
			want: types.BoardStats{Width: 1, Height: 3, Walls: 2, Balanced: true},
		},
		{
			name: "empty",
			rows: nil,
			want: types.BoardStats{Balanced: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.rows).Stats())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	b := Parse([]string{"#X@", "#?"})

	require.Len(t, b.Invalid, 2)
	assert.Equal(t, InvalidSquare{Square: Square{1, 0}, Char: 'X'}, b.Invalid[0])
	assert.Equal(t, InvalidSquare{Square: Square{1, 1}, Char: '?'}, b.Invalid[1])

	require.NotNil(t, b.Player)
	assert.Equal(t, Square{2, 0}, *b.Player)
	assert.Equal(t, 2, b.Stats().Invalid)
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want string
	}{
		{
			name: "canonical input round trips",
			rows: []string{"#####", "#@$.#", "#####"},
			want: "#####\n#@$.#\n#####\n",
		},
		{
			name: "alternate notation normalized",
			rows: []string{"#####", "#p-b#", "#_P.#", "#####"},
			want: "#####\n#  $#\n# +.#\n#####\n",
		},
		{
			name: "ragged rows padded with walls",
			rows: []string{"  ###", "###.#", "#@$ #", "#####"},
			want: "  ###\n###.#\n#@$ #\n#####\n",
		},
		{
			name: "pipe and newline rows",
			rows: []string{"####|#@.#\n####"},
			want: "####\n#@.#\n####\n",
		},
		{
			name: "empty board",
			rows: []string{"###"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.rows).String())
		})
	}
}
