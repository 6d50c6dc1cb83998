package commands

import (
	"context"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/order"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"
)

// CancelOrderCommandHandler moves a pending order to Cancelled.
// Cancellation keeps the record and its line items; a cancelled order
// still shows up in listings and exports.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command and returns the updated
// order, so callers can patch a displayed list entry by identifier.
// Returns ObjectNotFoundError when the order does not exist and
// InvalidTransitionError when the order is not Pending, including a
// repeated cancel of an already cancelled order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := staff.Authorize(staff.ActionUpdateOrderStatus, cmd.Session().Role()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
