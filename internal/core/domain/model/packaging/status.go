package packaging

import (
	"fmt"

	"packing/internal/pkg/errs"
)

// SessionStatus is the lifecycle state of a packaging session.
//
//	InProgress ──Complete──> Completed
type SessionStatus int

const (
	// SessionUnknown catches uninitialized values.
	SessionUnknown SessionStatus = iota
	SessionInProgress
	SessionCompleted
)

var sessionStatusNames = map[SessionStatus]string{
	SessionInProgress: "in_progress",
	SessionCompleted:  "completed",
}

func (s SessionStatus) Validate() error {
	if _, ok := sessionStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("session status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
func (s SessionStatus) String() string {
	if name, ok := sessionStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSessionStatus converts a persisted name back to a SessionStatus.
func ParseSessionStatus(name string) (SessionStatus, error) {
	for status, n := range sessionStatusNames {
		if n == name {
			return status, nil
		}
	}
	return SessionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"session status", fmt.Errorf("%q is not a valid status", name))
}

// CartonStatus is the lifecycle state of a carton.
type CartonStatus int

const (
	// CartonUnknown catches uninitialized values.
	CartonUnknown CartonStatus = iota
	// CartonPending is created but not yet usable for packing.
	CartonPending
	// CartonOpen is the single writable carton of a session.
	CartonOpen
	// CartonSealed is closed with its weight captured and eligible for shipment.
	CartonSealed
)

var cartonStatusNames = map[CartonStatus]string{
	CartonPending: "pending",
	CartonOpen:    "open",
	CartonSealed:  "sealed",
}

func (s CartonStatus) Validate() error {
	if _, ok := cartonStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("carton status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s CartonStatus) String() string {
	if name, ok := cartonStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func ParseCartonStatus(name string) (CartonStatus, error) {
	for status, n := range cartonStatusNames {
		if n == name {
			return status, nil
		}
	}
	return CartonUnknown, errs.NewValueIsInvalidErrorWithCause(
		"carton status", fmt.Errorf("%q is not a valid status", name))
}
