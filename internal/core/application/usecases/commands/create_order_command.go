package commands

import (
	"errors"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/order"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to persist a submitted order
// draft as a real order. It carries the draft produced by the order
// builder together with the session of the staff member placing it.
//
// Example:
//
//	draft, err := builder.Submit()
//	if err != nil {
//	    return fmt.Errorf("order not ready: %w", err)
//	}
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), draft, session)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	draft   order.Draft
	session staff.Session

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new sales order.
// Validates that the order ID is valid and that both the draft and the
// session came through their constructors. Returns an error if any
// validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	draft order.Draft,
	session staff.Session,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDraft(draft),
		orderCommand.setSession(session),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Draft returns the submitted draft with customer, lines, and total.
func (c CreateOrderCommand) Draft() order.Draft {
	return c.draft
}

// Session returns the session of the staff member placing the order.
func (c CreateOrderCommand) Session() staff.Session {
	return c.session
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDraft(draft order.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	c.draft = draft
	return nil
}

func (c *CreateOrderCommand) setSession(session staff.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	c.session = session
	return nil
}
