package cmd

import (
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/servicecatalog"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	geocoder  services.Geocoder
	distance  services.DistanceEstimator
	pricer    services.Pricer
	scheduler services.BookingScheduler
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	geocoder := services.NewGeocoder()
	distance := services.NewDistanceEstimator(services.NewFixedRouteEstimator())

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geocoder,
		distance:   distance,
		pricer:     services.NewPricer(geocoder, distance),
		scheduler:  services.NewBookingScheduler(),
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(c.pricer, f)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(
		servicecatalog.NewGormServiceCatalog(c.gormDB), c.scheduler, f)
}

func (c *CompositionRoot) CreateTransitionBookingCommandHandler() commands.TransitionBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateRescheduleBookingCommandHandler() commands.RescheduleBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRescheduleBookingCommandHandler(c.scheduler, f)
}

func (c *CompositionRoot) CreateRateBookingCommandHandler() commands.RateBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRentalCommandHandler() commands.CreateRentalCommandHandler {
	var f commands.RentalUoWFactory = FuncRentalUoWFactory(func() commands.RentalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRentalCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionRentalCommandHandler() commands.TransitionRentalCommandHandler {
	var f commands.RentalUoWFactory = FuncRentalUoWFactory(func() commands.RentalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionRentalCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteRentalCommandHandler() commands.DeleteRentalCommandHandler {
	var f commands.RentalUoWFactory = FuncRentalUoWFactory(func() commands.RentalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRentalCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateContractCommandHandler() commands.CreateContractCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateContractCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateContractDraftCommandHandler() commands.UpdateContractDraftCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateContractDraftCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteContractDraftCommandHandler() commands.DeleteContractDraftCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteContractDraftCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionContractCommandHandler() commands.TransitionContractCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionContractCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireContractsCommandHandler() commands.ExpireContractsCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireContractsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableBoxesQueryHandler() queries.GetAvailableBoxesQueryHandler {
	return queries.NewGetAvailableBoxesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProviderBookingsQueryHandler() queries.GetProviderBookingsQueryHandler {
	return queries.NewGetProviderBookingsQueryHandler(c.gormDB)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncRentalUoWFactory func() commands.RentalUoW

func (f FuncRentalUoWFactory) Create() commands.RentalUoW {
	return f()
}

type FuncContractUoWFactory func() commands.ContractUoW

func (f FuncContractUoWFactory) Create() commands.ContractUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}
