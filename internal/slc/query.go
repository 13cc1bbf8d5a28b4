// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slc

import "iter"

// ListIDs yields the Id of every level in document order. A level without
// an Id yields a *MissingIDError and ends the sequence.
func ListIDs(doc *Document) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		i := 0
		for level := range doc.Levels() {
			i++
			id, ok := level.Attr(IDAttr)
			if !ok {
				yield("", &MissingIDError{Index: i})
				return
			}
			if !yield(id, nil) {
				return
			}
		}
	}
}

// Kind tags the outcome of SelectLevel. The zero Kind is NotFound, so an
// empty Selection never reports success.
type Kind int

const (
	NotFound Kind = iota
	Found
	Ambiguous
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case Ambiguous:
		return "ambiguous"
	case Malformed:
		return "malformed"
	}
	return "unknown"
}

// Selection is the result of looking up one level by Id. Level is set only
// when Kind is Found.
type Selection struct {
	Kind    Kind
	ID      string
	Level   *Node
	Matches int

	err error
}

// Err returns nil for a Found selection and the matching typed error otherwise.
func (s Selection) Err() error {
	switch s.Kind {
	case Found:
		return nil
	case NotFound:
		return &NotFoundError{ID: s.ID}
	case Ambiguous:
		return &AmbiguousMatchError{ID: s.ID, Count: s.Matches}
	}
	return s.err
}

// Lines yields the text of each child of the selected level in order.
// Children without text yield "".
func (s Selection) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.Level == nil {
			return
		}
		for _, c := range s.Level.Children {
			if !yield(c.TextOr("")) {
				return
			}
		}
	}
}

// SelectLevel finds the single level whose Id equals id exactly.
// The whole document is scanned so that duplicates are detected.
func SelectLevel(doc *Document, id string) Selection {
	sel := Selection{ID: id}
	i := 0
	for level := range doc.Levels() {
		i++
		got, ok := level.Attr(IDAttr)
		if !ok {
			return Selection{Kind: Malformed, ID: id, err: &MissingIDError{Index: i}}
		}
		if got != id {
			continue
		}
		sel.Matches++
		if sel.Level == nil {
			sel.Level = level
		}
	}

	switch {
	case sel.Matches == 0:
		sel.Kind = NotFound
	case sel.Matches > 1:
		sel.Kind = Ambiguous
		sel.Level = nil
	default:
		sel.Kind = Found
	}
	return sel
}
