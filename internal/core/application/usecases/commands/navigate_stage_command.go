package commands

import (
	"errors"

	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/guard"
)

var ErrNavigateStageCommandIsNotConstructed = errors.New(
	"NavigateStageCommand must be created via NewNavigateStageCommand constructor",
)

// NavigateStageCommand represents a request to move the panel's workflow
// stage pointer for an order. Navigation is free; gating stays with the
// actions of each stage.
type NavigateStageCommand struct { //nolint:recvcheck //using for validation
	orderNo string
	stage   order.Stage

	guard guard.ConstructorGuard
}

// NewNavigateStageCommand creates a command to navigate to a stage.
func NewNavigateStageCommand(orderNo string, stage order.Stage) (NavigateStageCommand, error) {
	cmd := NavigateStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setStage(stage),
	); err != nil {
		return NavigateStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NavigateStageCommand) Validate() error {
	return c.guard.Validate(ErrNavigateStageCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c NavigateStageCommand) OrderNo() string { return c.orderNo }

// Stage returns the target stage.
func (c NavigateStageCommand) Stage() order.Stage { return c.stage }

func (c *NavigateStageCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *NavigateStageCommand) setStage(stage order.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	c.stage = stage
	return nil
}
