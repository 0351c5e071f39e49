package constraint

import (
	"golang.org/x/exp/constraints"
)

// Sortable covers every type with an intrinsic total order, i.e. the types
// usable with the < operator.
type Sortable interface {
	constraints.Ordered
}
