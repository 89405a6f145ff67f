package game

import (
	"errors"
	"fmt"
)

// RejectionKind classifies why an operation was refused.
type RejectionKind int

const (
	// KindAuthorization means the caller is not the actor the operation
	// claims.
	KindAuthorization RejectionKind = iota
	// KindAddressing means a storage key does not match the record.
	KindAddressing
	// KindPrecondition means the game state does not allow the operation.
	KindPrecondition
	// KindTargeting means the target is outside the weapon's arc or range.
	KindTargeting
)

func (k RejectionKind) String() string {
	switch k {
	case KindAuthorization:
		return "authorization"
	case KindAddressing:
		return "addressing"
	case KindPrecondition:
		return "precondition"
	case KindTargeting:
		return "targeting"
	default:
		return "unknown"
	}
}

var (
	ErrMissingSignature = errors.New("caller is not the signer")
	ErrInvalidKey       = errors.New("record key does not match the derived key")

	ErrGameFinished     = errors.New("game is already finished")
	ErrNotParticipant   = errors.New("caller is not a player in this game")
	ErrNotActivePlayer  = errors.New("not the active player")
	ErrAlreadyCommitted = errors.New("maneuvers already submitted")
	ErrInvalidShip      = errors.New("invalid ship id")
	ErrInvalidTarget    = errors.New("invalid target id")
	ErrNotOwner         = errors.New("you can only activate your own ship")
	ErrShipActivated    = errors.New("ship already activated")
	ErrShipDestroyed    = errors.New("ship is destroyed")
	ErrUnknownUpgrade   = errors.New("unknown upgrade id")

	ErrOutOfArc   = errors.New("target outside firing arc")
	ErrOutOfRange = errors.New("target outside range")
)

// RejectionError is returned by every operation that refuses to run. The
// inputs of a rejected operation are never modified.
type RejectionError struct {
	Kind   RejectionKind
	Err    error
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s rejected: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s rejected: %v: %s", e.Kind, e.Err, e.Detail)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

func reject(kind RejectionKind, err error, format string, args ...interface{}) error {
	return &RejectionError{
		Kind:   kind,
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Reject builds a rejection outside the game package, for checks the
// dispatcher runs before the core is invoked.
func Reject(kind RejectionKind, err error) error {
	return &RejectionError{Kind: kind, Err: err}
}

// IsRejection returns true if err is a game rule rejection rather than an
// infrastructure failure.
func IsRejection(err error) bool {
	var r *RejectionError
	return errors.As(err, &r)
}

// KindOf returns the kind of a rejection. The second value is false if err
// is not a rejection.
func KindOf(err error) (RejectionKind, bool) {
	var r *RejectionError
	if !errors.As(err, &r) {
		return 0, false
	}
	return r.Kind, true
}
