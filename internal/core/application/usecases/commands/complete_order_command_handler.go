package commands

import (
	"context"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/order"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"
)

// CompleteOrderCommandHandler moves a pending order to Completed.
// The transition rules live on the order aggregate; the handler only
// loads, transitions, and saves within a transaction.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command and returns the updated order,
// so callers can patch a displayed list entry by identifier.
// Returns ObjectNotFoundError when the order does not exist and
// InvalidTransitionError when the order is not Pending; in both cases
// nothing is written.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Complete(); err != nil {
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
