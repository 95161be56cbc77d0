// Package errors provides sentinel errors and error types for the chess service.
// It defines the failure modes of every core operation and a structured wrapper
// that preserves context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates text that is neither coordinate nor algebraic notation.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrIllegalMove indicates a well-formed move that is not legal in the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates algebraic text matching more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrGameOver indicates a move was attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrEmptyHistory indicates a takeback was requested with no moves played.
	ErrEmptyHistory = errors.New("no moves to take back")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Machine-readable codes returned by Code.
const (
	CodeInvalidNotation = "invalid_notation"
	CodeIllegalMove     = "illegal_move"
	CodeAmbiguousMove   = "ambiguous_move"
	CodeGameOver        = "game_over"
	CodeEmptyHistory    = "empty_history"
	CodeInvalidFEN      = "invalid_fen"
	CodeInvalidConfig   = "invalid_config"
	CodeInternal        = "internal"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidNotation, CodeInvalidNotation},
	{ErrIllegalMove, CodeIllegalMove},
	{ErrAmbiguousMove, CodeAmbiguousMove},
	{ErrGameOver, CodeGameOver},
	{ErrEmptyHistory, CodeEmptyHistory},
	{ErrInvalidFEN, CodeInvalidFEN},
	{ErrInvalidConfig, CodeInvalidConfig},
}

// Code returns the stable code of the first sentinel err wraps,
// "" for nil and CodeInternal for anything unrecognised.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// MoveError wraps errors with move context: the notation text submitted
// and the ply it would have been played at. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Notation string // The move text that caused the error (if applicable)
	Ply      int    // 1-based ply the move was attempted at (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Notation != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Notation))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
