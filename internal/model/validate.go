package model

// Validator validates a Node and returns an error if validation fails.
// Validators compose with Chain, following the same chain-of-
// responsibility shape as the teacher's issue-status validators.
type Validator func(n Node) error

// Chain composes multiple validators into one. They run in order; the
// first error stops the chain.
func Chain(validators ...Validator) Validator {
	return func(n Node) error {
		for _, v := range validators {
			if err := v(n); err != nil {
				return err
			}
		}
		return nil
	}
}

// FieldsValid validates a Node's own field invariants (§3.1).
func FieldsValid() Validator {
	return func(n Node) error { return n.Validate() }
}

// NotMilestoneConflict validates that a milestone node's end (if set)
// agrees with its start.
func NotMilestoneConflict() Validator {
	return func(n Node) error {
		if n.Milestone && n.Start != "" && n.End != "" && n.Start != n.End {
			return ErrFieldTypeMismatch
		}
		return nil
	}
}

// ForEdit returns the validator chain commands run after mutating a
// node's fields.
func ForEdit() Validator {
	return Chain(FieldsValid(), NotMilestoneConflict())
}
