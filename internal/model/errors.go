package model

import (
	"errors"
	"fmt"
)

// ErrPermanent is returned when removing a permanent injury or madness.
var ErrPermanent = errors.New("permanent and cannot be removed")

// ValidationError reports a field constraint violation. The entity must not
// be persisted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// EquipError carries the human-readable reason an equip attempt was refused.
// No state changes when one is returned.
type EquipError struct {
	Reason string
}

func (e *EquipError) Error() string {
	return "cannot equip: " + e.Reason
}
