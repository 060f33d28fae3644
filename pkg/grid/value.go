package grid

import "github.com/arthur-debert/hypergrid/pkg/errors"

type valueKind int

const (
	kindInvalid valueKind = iota
	kindText
	kindAttrs
	kindBoth
)

// Value is what a write assigns to the selected cells. It has exactly three
// valid variants: text only, an attribute mapping only, or both together.
// Text writes broadcast characters over the selection and leave attributes
// alone; attribute writes merge the mapping into each cell and leave
// characters alone.
type Value struct {
	kind  valueKind
	text  string
	attrs map[string]string
}

// Text builds a characters-only value.
func Text(s string) Value {
	return Value{kind: kindText, text: s}
}

// Attrs builds an attributes-only value. The mapping is merged into each
// targeted cell: new keys overwrite matching existing keys, untouched keys
// survive.
func Attrs(m map[string]string) Value {
	return Value{kind: kindAttrs, attrs: m}
}

// Cell builds a value that writes characters and merges attributes in one
// operation.
func Cell(s string, m map[string]string) Value {
	return Value{kind: kindBoth, text: s, attrs: m}
}

// validate rejects value shapes outside the three recognized variants.
func (v Value) validate() error {
	switch v.kind {
	case kindText:
		return nil
	case kindAttrs:
		if v.attrs == nil {
			return errors.New(errors.ErrInvalidAssignment, "attribute mapping is nil")
		}
		return nil
	case kindBoth:
		if v.attrs == nil {
			return errors.New(errors.ErrInvalidAssignment, "paired value has a nil attribute mapping")
		}
		return nil
	default:
		return errors.New(errors.ErrInvalidAssignment,
			"value must be text, an attribute mapping, or a paired text and mapping")
	}
}

func (v Value) hasText() bool  { return v.kind == kindText || v.kind == kindBoth }
func (v Value) hasAttrs() bool { return v.kind == kindAttrs || v.kind == kindBoth }
