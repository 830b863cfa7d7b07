package typeid

import "go.jetify.com/typeid/v2"

const (
	PrefixDiagram = "diagram"
	PrefixShape   = "shape"
	PrefixGroup   = "group"
	PrefixItem    = "item"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewDiagramID() string { return New(PrefixDiagram) }
func NewShapeID() string   { return New(PrefixShape) }
func NewGroupID() string   { return New(PrefixGroup) }

// NewLike generates a fresh id carrying the prefix of an existing one.
// Ids that are not typeids (for example plain GUIDs from older documents)
// get the generic item prefix.
func NewLike(id string) string {
	prefix := Prefix(id)
	if prefix == "" {
		prefix = PrefixItem
	}
	return New(prefix)
}

// Prefix returns the type prefix of id, or "" if id is not a valid typeid.
func Prefix(id string) string {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return ""
	}
	return parsed.Prefix()
}
