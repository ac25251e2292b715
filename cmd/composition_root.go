package cmd

import (
	"lifelink/internal/adapters/out/postgres"
	"lifelink/internal/core/application/usecases/commands"
	"lifelink/internal/core/application/usecases/queries"
	"lifelink/internal/pkg/localtime"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      *localtime.Converter
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, clock *localtime.Converter) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
	}
}

func (c *CompositionRoot) CreateCreateTransportRequestCommandHandler() commands.CreateTransportRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransportRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEmergencyRequestCommandHandler() commands.CreateEmergencyRequestCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEmergencyRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterHospitalCommandHandler() commands.RegisterHospitalCommandHandler {
	var f commands.HospitalUoWFactory = FuncHospitalUoWFactory(func() commands.HospitalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterHospitalCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateListingCommandHandler() commands.CreateListingCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateListingCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyDriverCommandHandler() commands.ApplyDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateListListingsQueryHandler() queries.ListListingsQueryHandler {
	return queries.NewListListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetHospitalBoardQueryHandler() queries.GetHospitalBoardQueryHandler {
	return queries.NewGetHospitalBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverPortalQueryHandler() queries.GetDriverPortalQueryHandler {
	return queries.NewGetDriverPortalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrgansQueryHandler() queries.GetAllOrgansQueryHandler {
	return queries.NewGetAllOrgansQueryHandler(c.gormDB)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncHospitalUoWFactory func() commands.HospitalUoW

func (f FuncHospitalUoWFactory) Create() commands.HospitalUoW {
	return f()
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
