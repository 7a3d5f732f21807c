package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBusinessNotFound = errors.New("no business with this business_id exists")
	ErrReviewNotFound   = errors.New("no review with this review_id exists")
)

// ConstraintKind names the store constraint a write ran into.
type ConstraintKind int

const (
	ConstraintUnique     ConstraintKind = iota + 1 // duplicate (user_id, business_id) pair
	ConstraintCheck                                // stars outside 0..5
	ConstraintForeignKey                           // referenced business row missing
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintUnique:
		return "unique"
	case ConstraintCheck:
		return "check"
	case ConstraintForeignKey:
		return "foreign_key"
	}
	return "unknown"
}

// ConstraintError is how the storage layer surfaces a classified constraint
// violation. Handlers switch on Kind instead of matching driver error text.
type ConstraintError struct {
	Kind ConstraintKind
	Err  error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation (%s): %v", e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// AsConstraint unwraps err into a *ConstraintError if one is in the chain.
func AsConstraint(err error) (*ConstraintError, bool) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
