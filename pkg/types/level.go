// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LevelRecord is the structured form of a level written by the yaml and json
// output formats. Listing fills only ID.
type LevelRecord struct {
	ID    string      `json:"id" yaml:"id"`
	Lines []string    `json:"lines,omitempty" yaml:"lines,omitempty"`
	Board *BoardStats `json:"board,omitempty" yaml:"board,omitempty"`

	// Rendered is the board in canonical notation, set when rendering was requested.
	Rendered string `json:"rendered,omitempty" yaml:"rendered,omitempty"`
}

// BoardStats summarizes a decoded Sokoban board.
type BoardStats struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Walls  int `json:"walls" yaml:"walls"`
	Floors int `json:"floors" yaml:"floors"`
	Boxes  int `json:"boxes" yaml:"boxes"`
	Goals  int `json:"goals" yaml:"goals"`

	// HasPlayer reports whether a pusher square was found.
	HasPlayer bool `json:"has_player" yaml:"has_player"`

	// Balanced reports whether the board has as many boxes as goals.
	Balanced bool `json:"balanced" yaml:"balanced"`

	// Solved reports whether every box already sits on a goal.
	Solved bool `json:"solved" yaml:"solved"`

	// Invalid counts characters outside the board legend.
	Invalid int `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}
