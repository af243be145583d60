package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/contract"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeContract(t *testing.T, expiresAt *time.Time) *contract.Contract {
	t.Helper()
	signedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err := contract.RestoreContract(kernel.NewUUID(), kernel.NewUUID(),
		"supply agreement", 12000, "EUR", contract.Active, &signedAt, expiresAt)
	require.NoError(t, err)
	return c
}

func TestExpireContractsCommandHandler_Handle_ExpiresOverdueContracts(t *testing.T) {
	ctx := t.Context()
	past := time.Now().Add(-24 * time.Hour)
	first := activeContract(t, &past)
	second := activeContract(t, &past)

	cmd, err := commands.NewExpireContractsCommand()
	require.NoError(t, err)

	repo := new(MockContractRepository)
	uow := new(MockContractUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractRepository").Return(repo).Once(),
		repo.On("GetActiveExpiredBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*contract.Contract{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContractUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireContractsCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, contract.Expired, first.Status())
	assert.Equal(t, contract.Expired, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireContractsCommandHandler_Handle_NothingToExpire(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewExpireContractsCommand()
	require.NoError(t, err)

	repo := new(MockContractRepository)
	uow := new(MockContractUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractRepository").Return(repo).Once(),
		repo.On("GetActiveExpiredBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*contract.Contract{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContractUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireContractsCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	repo.AssertExpectations(t)
}

func TestExpireContractsCommandHandler_Handle_SkipsNoLongerExpirable(t *testing.T) {
	ctx := t.Context()
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)
	overdue := activeContract(t, &past)
	// raced: another transaction already moved the expiry forward
	extended := activeContract(t, &future)

	cmd, err := commands.NewExpireContractsCommand()
	require.NoError(t, err)

	repo := new(MockContractRepository)
	uow := new(MockContractUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractRepository").Return(repo).Once(),
		repo.On("GetActiveExpiredBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*contract.Contract{overdue, extended}, nil).Once(),
		repo.On("Update", mock.Anything, overdue).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContractUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireContractsCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, contract.Expired, overdue.Status())
	assert.Equal(t, contract.Active, extended.Status())
	repo.AssertExpectations(t)
}
