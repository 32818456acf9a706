package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindScalar Kind = iota
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	String() string
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type ScalarValue struct {
	Val int64
}

func (v ScalarValue) Kind() Kind { return KindScalar }

func (v ScalarValue) String() string { return strconv.FormatInt(v.Val, 10) }

//-----------------------------------------------------------------------------
// Arrays
//-----------------------------------------------------------------------------

// ArrayValue holds a fixed-length sequence of scalars. Users address it with
// 1-based positions; position 0 stands for the whole array.
type ArrayValue struct {
	Elements []int64
}

func NewArray(elements []int64) *ArrayValue {
	out := make([]int64, len(elements))
	copy(out, elements)
	return &ArrayValue{Elements: out}
}

// NewZeroArray allocates an array of length zeros.
func NewZeroArray(length int) *ArrayValue {
	return &ArrayValue{Elements: make([]int64, length)}
}

func (v *ArrayValue) Kind() Kind { return KindArray }

func (v *ArrayValue) Len() int { return len(v.Elements) }

// InBounds reports whether pos addresses a single element.
func (v *ArrayValue) InBounds(pos int64) bool {
	return pos >= 1 && pos <= int64(len(v.Elements))
}

// At returns the element at a 1-based position. Callers check InBounds first.
func (v *ArrayValue) At(pos int64) int64 {
	return v.Elements[pos-1]
}

func (v *ArrayValue) Set(pos int64, val int64) {
	v.Elements[pos-1] = val
}

// Fill overwrites every element with val.
func (v *ArrayValue) Fill(val int64) {
	for i := range v.Elements {
		v.Elements[i] = val
	}
}

func (v *ArrayValue) Copy() *ArrayValue {
	return NewArray(v.Elements)
}

func (v *ArrayValue) String() string {
	parts := make([]string, len(v.Elements))
	for i, el := range v.Elements {
		parts[i] = strconv.FormatInt(el, 10)
	}
	return strings.Join(parts, " | ")
}

// CopyValue returns a value that shares no storage with v.
func CopyValue(v Value) Value {
	if arr, ok := v.(*ArrayValue); ok {
		return arr.Copy()
	}
	return v
}
