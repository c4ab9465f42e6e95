package tokens

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for an index outside [0, Len()).
	ErrOutOfRange = errors.New("tokens: index out of range")
	// ErrUnbalancedBlock is returned when a block scan runs off the stream.
	ErrUnbalancedBlock = errors.New("tokens: unbalanced block")
)

// RangeError carries the offending index.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tokens: index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// BlockError describes a failed block match.
type BlockError struct {
	Type  BlockType
	Index int
	Msg   string
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("tokens: %s block at %d: %s", e.Type, e.Index, e.Msg)
}

func (e *BlockError) Unwrap() error { return ErrUnbalancedBlock }
