package model

import "errors"

// Sentinel error kinds, per spec §7. Commands and validators wrap one
// of these with fmt.Errorf("...: %w", ...) so callers can errors.Is
// against a stable kind without parsing message text.
var (
	ErrIoError           = errors.New("io error")
	ErrLocked            = errors.New("locked by another process")
	ErrLockLost          = errors.New("lock lost")
	ErrInvalidLevel      = errors.New("invalid heading level")
	ErrNoAnchor          = errors.New("no anchor for indent")
	ErrOutOfRange        = errors.New("position out of range")
	ErrComputedField     = errors.New("field is computed, cannot be set directly")
	ErrFieldTypeMismatch = errors.New("field type mismatch")
	ErrUnknownColumn     = errors.New("unknown column")
)
