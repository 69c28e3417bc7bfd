package http

import (
	"net/http"

	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/generated/servers"
	"parceltracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateZone(ctx echo.Context) error {
	var body servers.CreateZoneJSONRequestBody
	invalid, err := bind(ctx, &body)
	if err != nil {
		return err
	}

	zone, err := directory.NewZone(kernel.NewUUID(), body.Name, body.Description)
	if rejected(invalid, err) {
		return errs.Merge(invalid, err)
	}
	if err = s.addDirectoryEntry(ctx, zone); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toZone(zone))
}

func (s *Server) ListZones(ctx echo.Context) error {
	return s.listDirectory(ctx, directory.KindZone, func(entities []directory.Entity) any {
		return collect(entities, toZone)
	})
}

func (s *Server) CreateDeliveryPerson(ctx echo.Context) error {
	var body servers.CreateDeliveryPersonJSONRequestBody
	invalid, err := bind(ctx, &body)
	if err != nil {
		return err
	}

	zoneID, err := optionalUUID("zoneId", body.ZoneId)
	if err != nil {
		return err
	}
	contact, err := directory.NewContact(body.FirstName, body.LastName, body.Phone, body.Email)
	if rejected(invalid, err) {
		return errs.Merge(invalid, err)
	}
	person, err := directory.NewDeliveryPerson(kernel.NewUUID(), contact, zoneID)
	if err != nil {
		return errs.Collect(err)
	}
	if err = s.addDirectoryEntry(ctx, person); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toDeliveryPerson(person))
}

func (s *Server) ListDeliveryPersons(ctx echo.Context) error {
	return s.listDirectory(ctx, directory.KindDeliveryPerson, func(entities []directory.Entity) any {
		return collect(entities, toDeliveryPerson)
	})
}

func (s *Server) CreateSender(ctx echo.Context) error {
	var body servers.CreateSenderJSONRequestBody
	invalid, err := bind(ctx, &body)
	if err != nil {
		return err
	}

	contact, err := directory.NewContact(body.FirstName, body.LastName, body.Phone, body.Email)
	if rejected(invalid, err) {
		return errs.Merge(invalid, err)
	}
	sender, err := directory.NewSenderClient(kernel.NewUUID(), contact, body.Address)
	if err != nil {
		return errs.Collect(err)
	}
	if err = s.addDirectoryEntry(ctx, sender); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toParty(sender.ID(), sender.Contact(), sender.Address()))
}

func (s *Server) ListSenders(ctx echo.Context) error {
	return s.listDirectory(ctx, directory.KindSender, func(entities []directory.Entity) any {
		return collect(entities, func(e *directory.SenderClient) servers.Party {
			return toParty(e.ID(), e.Contact(), e.Address())
		})
	})
}

func (s *Server) CreateRecipient(ctx echo.Context) error {
	var body servers.CreateRecipientJSONRequestBody
	invalid, err := bind(ctx, &body)
	if err != nil {
		return err
	}

	contact, err := directory.NewContact(body.FirstName, body.LastName, body.Phone, body.Email)
	if rejected(invalid, err) {
		return errs.Merge(invalid, err)
	}
	recipient, err := directory.NewRecipient(kernel.NewUUID(), contact, body.Address)
	if err != nil {
		return errs.Collect(err)
	}
	if err = s.addDirectoryEntry(ctx, recipient); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toParty(recipient.ID(), recipient.Contact(), recipient.Address()))
}

func (s *Server) ListRecipients(ctx echo.Context) error {
	return s.listDirectory(ctx, directory.KindRecipient, func(entities []directory.Entity) any {
		return collect(entities, func(e *directory.Recipient) servers.Party {
			return toParty(e.ID(), e.Contact(), e.Address())
		})
	})
}

func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	invalid, err := bind(ctx, &body)
	if err != nil {
		return err
	}

	product, err := directory.NewProduct(kernel.NewUUID(), body.Name, body.Price, body.Description)
	if rejected(invalid, err) {
		return errs.Merge(invalid, err)
	}
	if err = s.addDirectoryEntry(ctx, product); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toProduct(product))
}

func (s *Server) ListProducts(ctx echo.Context) error {
	return s.listDirectory(ctx, directory.KindProduct, func(entities []directory.Entity) any {
		return collect(entities, toProduct)
	})
}

func (s *Server) addDirectoryEntry(ctx echo.Context, entity directory.Entity) error {
	cmd, err := commands.NewAddDirectoryEntryCommand(entity)
	if err != nil {
		return errs.Collect(err)
	}
	return s.commands.AddDirectoryEntry.Handle(ctx.Request().Context(), cmd)
}

func (s *Server) listDirectory(ctx echo.Context, kind directory.Kind, render func([]directory.Entity) any) error {
	query, err := queries.NewListDirectoryQuery(kind)
	if err != nil {
		return errs.Collect(err)
	}

	entities, err := s.queries.ListDirectory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, render(entities))
}
