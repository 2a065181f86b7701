package types

import "errors"

var (
	ErrNotContiguous = errors.New("block not contiguous")
	ErrInvalidBlock  = errors.New("invalid block")
	ErrL1Regression  = errors.New("L1 accepted height moved backwards")
)
