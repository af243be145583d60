package commands

import (
	"context"

	"marketplace/internal/core/domain/model/parcel"
	"marketplace/internal/core/domain/services"
)

// CreateParcelResult reports the pricing outputs of a parcel creation back to
// the caller: the computed size class, estimated distance and final price.
// Degraded is true when the pricer fell back to defaults for part of the
// computation (e.g. malformed dimensions); the parcel is still created.
type CreateParcelResult struct {
	Size       parcel.SizeClass
	DistanceKm float64
	Price      float64
	Degraded   bool
}

// CreateParcelCommandHandler handles the business logic for parcel creation:
// geocode both addresses, estimate the route distance, price the shipment and
// persist the priced parcel.
type CreateParcelCommandHandler struct {
	pricer     services.Pricer
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel creation operations.
func NewCreateParcelCommandHandler(pricer services.Pricer, uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		pricer:     pricer,
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command. Pricing never fails: malformed
// dimensions degrade to a default size class, unknown routes to a fallback
// distance. Only invalid core inputs (weight, addresses) reject the command.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (CreateParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateParcelResult{}, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(), cmd.WeightKg(), cmd.Dimensions(),
		cmd.PickupAddress(), cmd.DeliveryAddress())
	if err != nil {
		return CreateParcelResult{}, err
	}

	quote := h.pricer.Quote(cmd.PickupAddress(), cmd.DeliveryAddress(), cmd.WeightKg(), cmd.Dimensions())
	if err = newParcel.ApplyQuote(quote.Size, quote.DistanceKm, quote.Price); err != nil {
		return CreateParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return CreateParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	return CreateParcelResult{
		Size:       quote.Size,
		DistanceKm: quote.DistanceKm,
		Price:      quote.Price,
		Degraded:   quote.Fallback != nil,
	}, nil
}
