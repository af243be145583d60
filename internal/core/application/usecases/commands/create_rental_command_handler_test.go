package commands_test

import (
	"errors"
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

func availableBox(t *testing.T, id kernel.UUID) *storagebox.StorageBox {
	t.Helper()
	box, err := storagebox.NewStorageBox(id, "Paris 11e", "M", 10)
	require.NoError(t, err)
	return box
}

func TestCreateRentalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()
	box := availableBox(t, boxID)

	cmd, err := commands.NewCreateRentalCommand(
		kernel.NewUUID(), kernel.NewUUID(), boxID,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	boxRepo := new(MockStorageBoxRepository)
	uow := new(MockRentalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StorageBoxRepository").Return(boxRepo).Once(),
		boxRepo.On("GetForUpdate", mock.Anything, boxID).Return(box, nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("GetHoldingByBoxForUpdate", mock.Anything, boxID).
			Return([]*rental.Rental{}, nil).Once(),
		rentalRepo.On("Add", mock.Anything, mock.AnythingOfType("*rental.Rental")).Return(nil).Once(),
		boxRepo.On("Update", mock.Anything, box).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRentalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, storagebox.Rented, box.Status())
	rentalRepo.AssertExpectations(t)
	boxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateRentalCommandHandler_Handle_BoxAlreadyRented(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()
	box := availableBox(t, boxID)
	require.NoError(t, box.MarkRented())

	cmd, err := commands.NewCreateRentalCommand(
		kernel.NewUUID(), kernel.NewUUID(), boxID,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	boxRepo := new(MockStorageBoxRepository)
	uow := new(MockRentalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StorageBoxRepository").Return(boxRepo).Once(),
		boxRepo.On("GetForUpdate", mock.Anything, boxID).Return(box, nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("GetHoldingByBoxForUpdate", mock.Anything, boxID).
			Return([]*rental.Rental{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRentalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ResourceConflictError{}, err)
	boxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRentalCommandHandler_Handle_BoxHeldDespiteAvailableMirror(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()
	// the mirror says Available, but a pending rental still claims the box
	box := availableBox(t, boxID)
	holder := pendingRental(t, kernel.NewUUID(), boxID)

	cmd, err := commands.NewCreateRentalCommand(
		kernel.NewUUID(), kernel.NewUUID(), boxID,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	boxRepo := new(MockStorageBoxRepository)
	uow := new(MockRentalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StorageBoxRepository").Return(boxRepo).Once(),
		boxRepo.On("GetForUpdate", mock.Anything, boxID).Return(box, nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("GetHoldingByBoxForUpdate", mock.Anything, boxID).
			Return([]*rental.Rental{holder}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRentalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ResourceConflictError{}, err)
	assert.Equal(t, storagebox.Available, box.Status())
	rentalRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	boxRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	mock.AssertExpectationsForObjects(t, factory, uow, boxRepo, rentalRepo)
}

func TestCreateRentalCommandHandler_Handle_AddErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	boxID := kernel.NewUUID()
	box := availableBox(t, boxID)

	cmd, err := commands.NewCreateRentalCommand(
		kernel.NewUUID(), kernel.NewUUID(), boxID,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	boxRepo := new(MockStorageBoxRepository)
	uow := new(MockRentalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StorageBoxRepository").Return(boxRepo).Once(),
		boxRepo.On("GetForUpdate", mock.Anything, boxID).Return(box, nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("GetHoldingByBoxForUpdate", mock.Anything, boxID).
			Return([]*rental.Rental{}, nil).Once(),
		rentalRepo.On("Add", mock.Anything, mock.AnythingOfType("*rental.Rental")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRentalCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	rentalRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateRentalCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateRentalCommand{} // not constructed properly
	factory := new(MockRentalUoWFactory)

	h := commands.NewCreateRentalCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
