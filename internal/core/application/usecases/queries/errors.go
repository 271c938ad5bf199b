package queries

import (
	"context"
	"fmt"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/pkg/errs"
)

var ErrSessionOrderMismatch = errs.NewPreconditionFailedError(
	"session_order_mismatch", "session does not pack this order")

func loadSessionOfOrder(
	ctx context.Context,
	sessions SessionReader,
	sessionID, orderID kernel.UUID,
) (*packaging.Session, error) {
	session, err := sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.OrderID().IsEqual(orderID) {
		return nil, errs.NewPreconditionFailedError(ErrSessionOrderMismatch.Code,
			fmt.Sprintf("session %s does not pack order %s", session.Token(), orderID))
	}
	return session, nil
}
