// internal/modal/query.go
package modal

import (
	"errors"
	"fmt"
)

// Block selects the lookahead position of the queried program block.
type Block int

const (
	BlockActive    Block = 0
	BlockNext      Block = 1
	BlockAfterNext Block = 2
)

func (b Block) String() string {
	switch b {
	case BlockActive:
		return "active"
	case BlockNext:
		return "next"
	case BlockAfterNext:
		return "next-after-next"
	default:
		return fmt.Sprintf("block(%d)", int(b))
	}
}

// Query types with fixed meaning.
const (
	TypeAllModal   = -1
	TypeAllOther   = -2
	TypeAllAxis    = -3
	TypeAllOneShot = -4
	TypeOneShot    = 300
)

// Query type ranges (inclusive).
const (
	modalFirst = 0
	modalLast  = 20
	otherFirst = 100
	otherLast  = 126
	axisFirst  = 200
	axisLast   = 207
)

// Strategy is the resolved decode strategy of a query.
type Strategy uint8

const (
	SingleModal Strategy = iota + 1
	AllModal
	SingleOneShot
	AllOneShot
	SingleOther
	AllOther
	SingleAxis
	AllAxis
)

func (s Strategy) String() string {
	switch s {
	case SingleModal:
		return "single-modal"
	case AllModal:
		return "all-modal"
	case SingleOneShot:
		return "single-one-shot"
	case AllOneShot:
		return "all-one-shot"
	case SingleOther:
		return "single-other"
	case AllOther:
		return "all-other"
	case SingleAxis:
		return "single-axis"
	case AllAxis:
		return "all-axis"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Kind is a validated query resolved to its decode strategy.
// Code carries the modal group or the other/axis subtype for single
// strategies and is zero otherwise.
type Kind struct {
	Strategy Strategy
	Code     int
}

// Type maps a Kind back to the query type it was classified from.
func (k Kind) Type() int {
	switch k.Strategy {
	case SingleModal, SingleOther, SingleAxis:
		return k.Code
	case AllModal:
		return TypeAllModal
	case SingleOneShot:
		return TypeOneShot
	case AllOneShot:
		return TypeAllOneShot
	case AllOther:
		return TypeAllOther
	case AllAxis:
		return TypeAllAxis
	}
	panic(fmt.Sprintf("modal: unhandled strategy %v", k.Strategy))
}

func (k Kind) String() string {
	switch k.Strategy {
	case SingleModal, SingleOther, SingleAxis:
		return fmt.Sprintf("%s(%d)", k.Strategy, k.Code)
	default:
		return k.Strategy.String()
	}
}

// Query is a raw (type, block) request.
type Query struct {
	Type  int
	Block int
}

// AllQueries returns the four "read all" queries for one block.
func AllQueries(b Block) []Query {
	return []Query{
		{Type: TypeAllModal, Block: int(b)},
		{Type: TypeAllOneShot, Block: int(b)},
		{Type: TypeAllOther, Block: int(b)},
		{Type: TypeAllAxis, Block: int(b)},
	}
}

// ErrInvalidQuery matches every QueryError via errors.Is.
var ErrInvalidQuery = errors.New("modal: invalid query")

// Reason tells which half of a query was rejected.
type Reason uint8

const (
	ReasonBlockOutOfDomain Reason = iota + 1
	ReasonTypeOutOfDomain
)

func (r Reason) String() string {
	switch r {
	case ReasonBlockOutOfDomain:
		return "block-out-of-domain"
	case ReasonTypeOutOfDomain:
		return "type-out-of-domain"
	default:
		return "unknown"
	}
}

// QueryError reports a (type, block) pair outside the legal domain.
type QueryError struct {
	Type   int
	Block  int
	Reason Reason
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("modal: invalid query type=%d block=%d: %s", e.Type, e.Block, e.Reason)
}

func (e *QueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// Classify validates a query and resolves its decode strategy.
// Block is checked before type. No decoding happens here.
func Classify(typ, block int) (Kind, error) {
	if block < int(BlockActive) || block > int(BlockAfterNext) {
		return Kind{}, &QueryError{Type: typ, Block: block, Reason: ReasonBlockOutOfDomain}
	}

	switch {
	case typ >= modalFirst && typ <= modalLast:
		return Kind{Strategy: SingleModal, Code: typ}, nil
	case typ >= otherFirst && typ <= otherLast:
		return Kind{Strategy: SingleOther, Code: typ}, nil
	case typ >= axisFirst && typ <= axisLast:
		return Kind{Strategy: SingleAxis, Code: typ}, nil
	}

	switch typ {
	case TypeAllModal:
		return Kind{Strategy: AllModal}, nil
	case TypeOneShot:
		return Kind{Strategy: SingleOneShot}, nil
	case TypeAllOneShot:
		return Kind{Strategy: AllOneShot}, nil
	case TypeAllOther:
		return Kind{Strategy: AllOther}, nil
	case TypeAllAxis:
		return Kind{Strategy: AllAxis}, nil
	}

	return Kind{}, &QueryError{Type: typ, Block: block, Reason: ReasonTypeOutOfDomain}
}

// ClassifyQuery is Classify for a Query value.
func ClassifyQuery(q Query) (Kind, error) {
	return Classify(q.Type, q.Block)
}
