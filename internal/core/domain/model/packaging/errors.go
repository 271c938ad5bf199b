package packaging

import (
	"errors"
	"fmt"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

// Domain errors for packaging operations. Errors built with a specific reason
// (for example by quantityExceeded) still match these values with errors.Is.
var (
	ErrSessionIsNotConstructed     = errors.New("Session must be created via NewSession or RestoreSession constructor")
	ErrCartonIsNotConstructed      = errors.New("Carton must be created via RestoreCarton or through its session")
	ErrLedgerEntryIsNotConstructed = errors.New("LedgerEntry must be created via RestoreLedgerEntry or through its carton")
	ErrBoxConfigIsNotConstructed   = errors.New("BoxConfig must be created via NewBoxConfig constructor")

	ErrOperatorIsRequired = errs.NewValueIsRequiredError("operator")
	ErrBoxesAreRequired   = errs.NewValueIsRequiredError("box configurations")

	ErrQuantityExceeded = errs.NewPreconditionFailedError(
		"quantity_exceeded", "quantity exceeds what remains to pack in this session")
	ErrFullyPackedInSession = errs.NewPreconditionFailedError(
		"fully_packed_in_session", "item is already fully packed in this session")
	ErrItemNotInOrder = errs.NewPreconditionFailedError(
		"item_not_in_order", "item does not belong to the order")
	ErrNotYetPicked = errs.NewPreconditionFailedError(
		"not_yet_picked", "item has not been picked yet")

	ErrEmptyCarton = errs.NewPreconditionFailedError(
		"empty_carton", "cannot seal an empty carton")
	ErrCartonNotOpen = errs.NewPreconditionFailedError(
		"carton_not_open", "carton is not open")
	ErrCartonNotSealed = errs.NewPreconditionFailedError(
		"carton_not_sealed", "only sealed cartons can be reopened")
	ErrCartonSealed = errs.NewPreconditionFailedError(
		"carton_sealed", "items cannot be removed from a sealed carton")
	ErrAnotherCartonOpen = errs.NewPreconditionFailedError(
		"carton_already_open", "seal the open carton before opening the next one")

	ErrSessionNotInProgress = errs.NewPreconditionFailedError(
		"session_not_in_progress", "session is not in progress")
	ErrSessionNotCompleted = errs.NewPreconditionFailedError(
		"session_not_completed", "session is not completed")

	ErrSessionAlreadyActive = errs.NewConflictError(
		"session_already_active", "order already has a packaging session in progress")
	ErrAlreadyShipped = errs.NewConflictError(
		"already_shipped", "session was already consolidated into a shipment")
)

// SessionAlreadyActiveError carries the session that blocks creating a new
// one, so callers can offer to resume it.
type SessionAlreadyActiveError struct {
	SessionID kernel.UUID
	Token     string
}

func NewSessionAlreadyActiveError(sessionID kernel.UUID, token string) *SessionAlreadyActiveError {
	return &SessionAlreadyActiveError{SessionID: sessionID, Token: token}
}

func (e *SessionAlreadyActiveError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSessionAlreadyActive, e.Token)
}

func (e *SessionAlreadyActiveError) Unwrap() error {
	return ErrSessionAlreadyActive
}

func quantityExceeded(requested, remaining int) error {
	return errs.NewPreconditionFailedError(ErrQuantityExceeded.Code,
		fmt.Sprintf("requested %d but only %d remaining in this session", requested, remaining))
}

func alreadyShipped(token string) error {
	return errs.NewConflictError(ErrAlreadyShipped.Code,
		fmt.Sprintf("session %s was already consolidated into a shipment", token))
}

func cartonNotFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("carton", id.String())
}
