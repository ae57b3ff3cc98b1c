package engine

import (
	"errors"
	"fmt"
)

// Rejections of a player action. None of them change battle state.
var (
	ErrInsufficientEnergy       = errors.New("insufficient energy")
	ErrInvalidHandIndex         = errors.New("invalid hand index")
	ErrInvalidTarget            = errors.New("invalid target")
	ErrNoActiveTargetingSession = errors.New("no active targeting session")
	ErrTargetingInProgress      = errors.New("targeting in progress")
	ErrBattleAlreadyOver        = errors.New("battle already over")
)

var (
	// ErrInvalidSetup wraps every rejection from NewBattle.
	ErrInvalidSetup = errors.New("invalid battle setup")
	// ErrInvariantViolation is the target of every *InvariantError.
	ErrInvariantViolation = errors.New("battle invariant violated")
)

// InvariantError reports broken pile accounting. A battle that produced one
// refuses every further action.
type InvariantError struct {
	Draw     int
	Discard  int
	Hand     int
	DeckSize int
	Detail   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: draw=%d discard=%d hand=%d deck=%d: %s",
		ErrInvariantViolation, e.Draw, e.Discard, e.Hand, e.DeckSize, e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }
