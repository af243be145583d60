package commands_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/contract"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/parcel"
	"marketplace/internal/core/domain/model/rental"
	"marketplace/internal/core/domain/model/storagebox"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetActiveByProviderForUpdate(
	ctx context.Context, providerID kernel.UUID,
) ([]*booking.Booking, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

type MockRentalRepository struct{ mock.Mock }

func (m *MockRentalRepository) Add(ctx context.Context, r *rental.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRentalRepository) Update(ctx context.Context, r *rental.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRentalRepository) Get(ctx context.Context, id kernel.UUID) (*rental.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Rental), args.Error(1)
}

func (m *MockRentalRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRentalRepository) GetHoldingByBoxForUpdate(
	ctx context.Context, storageBoxID kernel.UUID,
) ([]*rental.Rental, error) {
	args := m.Called(ctx, storageBoxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rental.Rental), args.Error(1)
}

type MockStorageBoxRepository struct{ mock.Mock }

func (m *MockStorageBoxRepository) Add(ctx context.Context, b *storagebox.StorageBox) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockStorageBoxRepository) Update(ctx context.Context, b *storagebox.StorageBox) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockStorageBoxRepository) Get(ctx context.Context, id kernel.UUID) (*storagebox.StorageBox, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storagebox.StorageBox), args.Error(1)
}

func (m *MockStorageBoxRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*storagebox.StorageBox, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storagebox.StorageBox), args.Error(1)
}

type MockContractRepository struct{ mock.Mock }

func (m *MockContractRepository) Add(ctx context.Context, c *contract.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Contract), args.Error(1)
}

func (m *MockContractRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContractRepository) GetActiveExpiredBefore(
	ctx context.Context, deadline time.Time,
) ([]*contract.Contract, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contract.Contract), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockServiceCatalog struct{ mock.Mock }

func (m *MockServiceCatalog) GetService(ctx context.Context, id kernel.UUID) (ports.ServiceDescription, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.ServiceDescription), args.Error(1)
}

type MockBookingUoW struct{ mock.Mock }

func (m *MockBookingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockRentalUoW struct{ mock.Mock }

func (m *MockRentalUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRentalUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRentalUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRentalUoW) RentalRepository() ports.RentalRepository {
	args := m.Called()
	return args.Get(0).(ports.RentalRepository)
}

func (m *MockRentalUoW) StorageBoxRepository() ports.StorageBoxRepository {
	args := m.Called()
	return args.Get(0).(ports.StorageBoxRepository)
}

type MockRentalUoWFactory struct{ mock.Mock }

func (m *MockRentalUoWFactory) Create() commands.RentalUoW {
	args := m.Called()
	return args.Get(0).(commands.RentalUoW)
}

type MockContractUoW struct{ mock.Mock }

func (m *MockContractUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractUoW) ContractRepository() ports.ContractRepository {
	args := m.Called()
	return args.Get(0).(ports.ContractRepository)
}

type MockContractUoWFactory struct{ mock.Mock }

func (m *MockContractUoWFactory) Create() commands.ContractUoW {
	args := m.Called()
	return args.Get(0).(commands.ContractUoW)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}
