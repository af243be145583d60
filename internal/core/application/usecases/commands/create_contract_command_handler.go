package commands

import (
	"context"

	"marketplace/internal/core/domain/model/contract"
)

// CreateContractCommandHandler handles contract draft creation.
type CreateContractCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewCreateContractCommandHandler creates a handler for contract creation operations.
func NewCreateContractCommandHandler(uowFactory ContractUoWFactory) CreateContractCommandHandler {
	return CreateContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contract creation command.
func (h *CreateContractCommandHandler) Handle(ctx context.Context, cmd CreateContractCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newContract, err := contract.NewContract(
		cmd.ContractID(), cmd.MerchantID(),
		cmd.Title(), cmd.Value(), cmd.Currency(), cmd.ExpiresAt())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ContractRepository().Add(ctx, newContract); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
