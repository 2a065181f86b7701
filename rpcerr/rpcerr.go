// Package rpcerr defines the global vocabulary of RPC failure kinds and the
// per-method subsets drawn from it. Wire codes are assigned per kind, once,
// permanently; extending the vocabulary never renumbers an existing kind.
package rpcerr

import (
	"fmt"
)

// Kind identifies one member of the error vocabulary. Append only.
type Kind int

const (
	// Internal is the catch-all for any underlying fault. It is a member of
	// every method's set and always maps to the reserved JSON-RPC internal
	// error code, so no internal detail leaks through the code field.
	Internal Kind = iota
	BlockNotFound
	TxnNotFound
	PendingNotSupported
)

var codes = map[Kind]int{
	Internal:            -32603,
	BlockNotFound:       24,
	TxnNotFound:         29,
	PendingNotSupported: 38,
}

var messages = map[Kind]string{
	Internal:            "Internal error",
	BlockNotFound:       "Block not found",
	TxnNotFound:         "Transaction hash not found",
	PendingNotSupported: "Pending data not supported in this configuration",
}

// Error is a taxonomy value produced by one method's declared set. It
// implements go-ethereum's rpc.Error, so the server renders it as the
// (code, message) pair of its kind.
type Error struct {
	kind  Kind
	cause error
}

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", messages[e.kind], e.cause)
	}
	return messages[e.kind]
}

// ErrorCode returns the permanent wire code of the error's kind.
func (e *Error) ErrorCode() int { return codes[e.kind] }

func (e *Error) Unwrap() error { return e.cause }

// Set is one method's declared subset of the vocabulary. Internal is always a
// member. A set hands out one constructor per declared kind via Constructor;
// both the declaration and the constructor requests are resolved when the
// set is built at package init, so taxonomy drift fails before any request
// is served.
type Set struct {
	method string
	kinds  map[Kind]bool
}

// NewSet declares the error subset of a method. Sets are built once, at
// package init, from a non-empty kind list.
func NewSet(method string, kinds ...Kind) *Set {
	if method == "" {
		panic("rpcerr: set declared without a method name")
	}
	if len(kinds) == 0 {
		panic(fmt.Sprintf("rpcerr: %s declares an empty error set", method))
	}
	s := &Set{method: method, kinds: map[Kind]bool{Internal: true}}
	for _, k := range kinds {
		if _, known := codes[k]; !known {
			panic(fmt.Sprintf("rpcerr: %s declares unknown kind %d", method, k))
		}
		if s.kinds[k] {
			panic(fmt.Sprintf("rpcerr: %s declares kind %d twice", method, k))
		}
		s.kinds[k] = true
	}
	return s
}

func (s *Set) Method() string { return s.method }

// Has reports whether k is a declared member of the set.
func (s *Set) Has(k Kind) bool { return s.kinds[k] }

// Constructor returns the builder for a declared kind. Requesting a kind
// outside the declaration fails here, at set construction, not on the error
// path of a live request.
func (s *Set) Constructor(k Kind) func() *Error {
	if !s.kinds[k] {
		panic(fmt.Sprintf("rpcerr: %s must not return kind %d", s.method, k))
	}
	return func() *Error { return &Error{kind: k} }
}

// Internal folds an arbitrary fault into the catch-all, annotated with the
// step that failed. The causal chain stays available through Unwrap for
// diagnostics; the wire code is always the reserved internal one.
func (s *Set) Internal(step string, cause error) *Error {
	return &Error{kind: Internal, cause: fmt.Errorf("%s: %w", step, cause)}
}
