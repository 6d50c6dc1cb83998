package commands

import (
	"context"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"
)

// DeleteOrderCommandHandler permanently removes an order.
// Deletion is owner-only and works from any status: pending, completed,
// and cancelled orders can all be purged. The order header and its line
// items go in one transaction.
//
// Example:
//
//	handler := NewDeleteOrderCommandHandler(uowFactory)
//	cmd, _ := NewDeleteOrderCommand(orderID, session)
//	removedID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, staff.ErrForbidden) {
//	    log.Println("only the owner can delete orders")
//	}
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command and returns the removed order's
// identifier on success, so callers can drop the matching entry from a
// displayed list.
// The role check runs before any database work; a salesperson gets a
// ForbiddenError without the transaction ever starting. Deleting a
// missing order returns ObjectNotFoundError.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if err := staff.Authorize(staff.ActionDeleteOrder, cmd.Session().Role()); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return cmd.OrderID(), nil
}
