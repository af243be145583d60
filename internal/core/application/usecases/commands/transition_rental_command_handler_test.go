package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rental"
	"marketplace/internal/core/domain/model/storagebox"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingRental(t *testing.T, rentalID, boxID kernel.UUID) *rental.Rental {
	t.Helper()
	r, err := rental.NewRental(rentalID, kernel.NewUUID(), boxID,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), nil, 10)
	require.NoError(t, err)
	return r
}

func rentedBox(t *testing.T, boxID kernel.UUID) *storagebox.StorageBox {
	t.Helper()
	box, err := storagebox.RestoreStorageBox(boxID, "Paris 11e", "M", 10, storagebox.Rented)
	require.NoError(t, err)
	return box
}

func TestTransitionRentalCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	rentalID := kernel.NewUUID()
	aggregate := pendingRental(t, rentalID, kernel.NewUUID())

	cmd, err := commands.NewTransitionRentalCommand(rentalID, rental.Active, kernel.RoleAdmin)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	uow := new(MockRentalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("Get", mock.Anything, rentalID).Return(aggregate, nil).Once(),
		rentalRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionRentalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rental.Active, aggregate.Status())
	// approval keeps the box held, so the box repository is never touched
	uow.AssertNotCalled(t, "StorageBoxRepository")
	rentalRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionRentalCommandHandler_Handle_CancelReleasesBox(t *testing.T) {
	ctx := t.Context()
	rentalID := kernel.NewUUID()
	boxID := kernel.NewUUID()
	aggregate := pendingRental(t, rentalID, boxID)
	box := rentedBox(t, boxID)

	cmd, err := commands.NewTransitionRentalCommand(rentalID, rental.Cancelled, kernel.RoleCustomer)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	boxRepo := new(MockStorageBoxRepository)
	uow := new(MockRentalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("Get", mock.Anything, rentalID).Return(aggregate, nil).Once(),
		rentalRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("StorageBoxRepository").Return(boxRepo).Once(),
		boxRepo.On("GetForUpdate", mock.Anything, boxID).Return(box, nil).Once(),
		boxRepo.On("Update", mock.Anything, box).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionRentalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rental.Cancelled, aggregate.Status())
	assert.Equal(t, storagebox.Available, box.Status())
	rentalRepo.AssertExpectations(t)
	boxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionRentalCommandHandler_Handle_CompleteSettlesCostAndReleasesBox(t *testing.T) {
	ctx := t.Context()
	rentalID := kernel.NewUUID()
	boxID := kernel.NewUUID()
	aggregate := pendingRental(t, rentalID, boxID)
	require.NoError(t, aggregate.TransitionTo(rental.Active, kernel.RoleAdmin))
	box := rentedBox(t, boxID)

	cmd, err := commands.NewTransitionRentalCommand(rentalID, rental.Completed, kernel.RoleCustomer)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	boxRepo := new(MockStorageBoxRepository)
	uow := new(MockRentalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("Get", mock.Anything, rentalID).Return(aggregate, nil).Once(),
		rentalRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("StorageBoxRepository").Return(boxRepo).Once(),
		boxRepo.On("GetForUpdate", mock.Anything, boxID).Return(box, nil).Once(),
		boxRepo.On("Update", mock.Anything, box).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionRentalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rental.Completed, aggregate.Status())
	assert.NotNil(t, aggregate.EndDate())
	assert.Equal(t, storagebox.Available, box.Status())
}

func TestTransitionRentalCommandHandler_Handle_ForbiddenTransition(t *testing.T) {
	ctx := t.Context()
	rentalID := kernel.NewUUID()
	aggregate := pendingRental(t, rentalID, kernel.NewUUID())

	// customers cannot approve their own rental
	cmd, err := commands.NewTransitionRentalCommand(rentalID, rental.Active, kernel.RoleCustomer)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	uow := new(MockRentalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("Get", mock.Anything, rentalID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionRentalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.TransitionForbiddenError{}, err)
	assert.Equal(t, rental.Pending, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestTransitionRentalCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	rentalID := kernel.NewUUID()

	cmd, err := commands.NewTransitionRentalCommand(rentalID, rental.Active, kernel.RoleAdmin)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	uow := new(MockRentalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("Get", mock.Anything, rentalID).
			Return(nil, errs.NewObjectNotFoundError("rental", rentalID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionRentalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ObjectNotFoundError{}, err)
}
