package types

import "github.com/google/uuid"

// RunID identifies one batch execution across logs, reports and exported
// metrics rows.
type RunID string

func NewRunID() RunID {
	return RunID(uuid.New().String())
}

func (x RunID) String() string {
	return string(x)
}
