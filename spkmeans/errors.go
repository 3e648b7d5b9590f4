// SPDX-License-Identifier: MIT

package spkmeans

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spkmeans/embed"
	"github.com/katalvlaran/spkmeans/kmeans"
	"github.com/katalvlaran/spkmeans/pointset"
)

// Kind is the user-facing error class.
type Kind int

const (
	// KindGeneric covers I/O, numerical and internal failures.
	KindGeneric Kind = iota
	// KindInput covers bad arguments, k, goal or input shape.
	KindInput
)

// Fixed user-facing messages.
const (
	MessageInput   = "Invalid Input!"
	MessageGeneric = "An Error Has Occured"
)

// Message is the fixed text shown to the user for k.
func (k Kind) Message() string {
	if k == KindInput {
		return MessageInput
	}

	return MessageGeneric
}

func (k Kind) String() string {
	if k == KindInput {
		return "input"
	}

	return "generic"
}

// Sentinel input errors.
var (
	ErrInvalidK      = errors.New("spkmeans: k must be a non-negative integer below the point count")
	ErrUnknownGoal   = errors.New("spkmeans: unknown goal")
	ErrNotSquare     = errors.New("spkmeans: jacobi input must be an n×n matrix")
	ErrArgs          = errors.New("spkmeans: wrong number of arguments")
	ErrInvalidParams = errors.New("spkmeans: invalid run parameters")
)

// Error carries a Kind, the failing operation and the cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// inputError and genericError wrap err for op; nil stays nil.
func inputError(op string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: KindInput, Op: op, Err: err}
}

func genericError(op string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: KindGeneric, Op: op, Err: err}
}

// inputSentinels are the package errors treated as bad user input.
var inputSentinels = []error{
	ErrInvalidK,
	ErrUnknownGoal,
	ErrNotSquare,
	ErrArgs,
	ErrInvalidParams,
	pointset.ErrRaggedRow,
	pointset.ErrBadNumber,
	kmeans.ErrInvalidK,
	embed.ErrInvalidK,
}

// Classify maps any error to a Kind. An *Error decides for itself; known
// input sentinels anywhere in the chain are KindInput; everything else,
// including nil, is KindGeneric.
func Classify(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for _, s := range inputSentinels {
		if errors.Is(err, s) {
			return KindInput
		}
	}

	return KindGeneric
}
