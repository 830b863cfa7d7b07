// Package model contains the diagram document model: shapes, groups, the
// immutable Diagram aggregate and the selection rules that operate on it.
//
// Every value in this package is immutable once constructed. Edits return
// new values and leave the receiver untouched, so a Diagram can be shared
// with readers while the next version is being prepared.
package model

import (
	"errors"

	"github.com/inamate/wireframe/backend-go/internal/geom"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrDuplicateID      = errors.New("duplicate item id")
	ErrInvalidGrouping  = errors.New("invalid grouping")
	ErrInvalidOrder     = errors.New("invalid reorder")
	ErrInvalidValue     = errors.New("invalid appearance value")
	ErrBrokenInvariants = errors.New("diagram invariants violated")
)

type ItemType string

const (
	ItemTypeShape ItemType = "Shape"
	ItemTypeGroup ItemType = "Group"
)

// DiagramItem is either a Shape (leaf) or a Group (composite). Other
// implementations may live in a diagram, but only shapes and groups can be
// serialized.
type DiagramItem interface {
	ID() string
	Type() ItemType
	// Bounds returns the transform covering the item inside d.
	Bounds(d *Diagram) geom.Transform
	// TransformByBounds maps the item from oldBounds into newBounds.
	TransformByBounds(oldBounds, newBounds geom.Transform) DiagramItem
	Clone() DiagramItem
}
