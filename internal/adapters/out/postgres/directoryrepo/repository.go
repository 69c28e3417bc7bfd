package directoryrepo

import (
	"context"
	"errors"
	"fmt"

	"parceltracker/internal/adapters/out/postgres/pgerr"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormDirectoryRepository implements ports.DirectoryRepository using GORM.
type GormDirectoryRepository struct {
	db *gorm.DB
}

func NewGormDirectoryRepository(db *gorm.DB) *GormDirectoryRepository {
	return &GormDirectoryRepository{db: db}
}

func (r *GormDirectoryRepository) Exists(ctx context.Context, kind directory.Kind, id kernel.UUID) (bool, error) {
	model, err := modelOf(kind)
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.WithContext(ctx).Model(model).Where("id = ?", id.Bytes()).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r *GormDirectoryRepository) Get(ctx context.Context, kind directory.Kind, id kernel.UUID) (directory.Entity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	var (
		entity directory.Entity
		err    error
	)
	switch kind {
	case directory.KindZone:
		var dto ZoneDTO
		if err = db.First(&dto, "id = ?", id.Bytes()).Error; err == nil {
			entity, err = zoneToDomain(dto)
		}
	case directory.KindDeliveryPerson:
		var dto DeliveryPersonDTO
		if err = db.First(&dto, "id = ?", id.Bytes()).Error; err == nil {
			entity, err = deliveryPersonToDomain(dto)
		}
	case directory.KindSender:
		var dto SenderDTO
		if err = db.First(&dto, "id = ?", id.Bytes()).Error; err == nil {
			entity, err = senderToDomain(dto)
		}
	case directory.KindRecipient:
		var dto RecipientDTO
		if err = db.First(&dto, "id = ?", id.Bytes()).Error; err == nil {
			entity, err = recipientToDomain(dto)
		}
	case directory.KindProduct:
		var dto ProductDTO
		if err = db.First(&dto, "id = ?", id.Bytes()).Error; err == nil {
			entity, err = productToDomain(dto)
		}
	default:
		return nil, kind.Validate()
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, kind.NotFound("id", id)
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *GormDirectoryRepository) Count(ctx context.Context, kind directory.Kind) (int64, error) {
	model, err := modelOf(kind)
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.WithContext(ctx).Model(model).Count(&count).Error
	return count, err
}

func (r *GormDirectoryRepository) ListDeliveryPersons(ctx context.Context) ([]*directory.DeliveryPerson, error) {
	var dtos []DeliveryPersonDTO
	if err := r.db.WithContext(ctx).Order(personOrder).Find(&dtos).Error; err != nil {
		return nil, err
	}

	persons := make([]*directory.DeliveryPerson, 0, len(dtos))
	for _, dto := range dtos {
		person, err := deliveryPersonToDomain(dto)
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}
	return persons, nil
}

func (r *GormDirectoryRepository) ListZones(ctx context.Context) ([]*directory.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*directory.Zone, 0, len(dtos))
	for _, dto := range dtos {
		zone, err := zoneToDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

func (r *GormDirectoryRepository) CountDeliveryPersonsInZone(ctx context.Context, zoneID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryPersonDTO{}).
		Where("zone_id = ?", zoneID.Bytes()).
		Count(&count).Error
	return count, err
}

// Add stores a new entity, reporting unique violations as errs.DuplicateError
// and an unknown zone as errs.ObjectNotFoundError.
func (r *GormDirectoryRepository) Add(ctx context.Context, entity directory.Entity) error {
	db := r.db.WithContext(ctx)
	kind := entity.Kind().String()

	switch e := entity.(type) {
	case *directory.Zone:
		dto := ZoneDTO{ID: e.ID().Bytes(), Name: e.Name(), Description: e.Description()}
		return pgerr.Translate(db.Create(&dto).Error,
			pgerr.Rule{Column: "name", Kind: kind, Field: "name", Value: e.Name()})

	case *directory.DeliveryPerson:
		dto := DeliveryPersonDTO{ID: e.ID().Bytes(), Contact: UniqueContactDTO(contactFromDomain(e.Contact()))}
		var rules []pgerr.Rule
		if zoneID := e.ZoneID(); zoneID != nil {
			raw := zoneID.Bytes()
			dto.ZoneID = &raw
			rules = append(rules, pgerr.Rule{
				Column: "zone", Kind: directory.KindZone.String(), Field: "zoneId", Value: zoneID.String(),
			})
		}
		rules = append(rules, contactRules(kind, e.Contact())...)
		return pgerr.Translate(db.Omit("Zone").Create(&dto).Error, rules...)

	case *directory.SenderClient:
		dto := SenderDTO{
			ID:      e.ID().Bytes(),
			Contact: UniqueContactDTO(contactFromDomain(e.Contact())),
			Address: e.Address(),
		}
		return pgerr.Translate(db.Create(&dto).Error, contactRules(kind, e.Contact())...)

	case *directory.Recipient:
		dto := RecipientDTO{ID: e.ID().Bytes(), Contact: contactFromDomain(e.Contact()), Address: e.Address()}
		return db.Create(&dto).Error

	case *directory.Product:
		dto := ProductDTO{ID: e.ID().Bytes(), Name: e.Name(), Price: e.Price(), Description: e.Description()}
		return pgerr.Translate(db.Create(&dto).Error,
			pgerr.Rule{Column: "name", Kind: kind, Field: "name", Value: e.Name()})
	}

	return fmt.Errorf("unsupported directory entity %T", entity)
}

// List returns every entity of kind ordered by display name.
func (r *GormDirectoryRepository) List(ctx context.Context, kind directory.Kind) ([]directory.Entity, error) {
	db := r.db.WithContext(ctx)

	switch kind {
	case directory.KindZone:
		zones, err := r.ListZones(ctx)
		return entities(zones, err)
	case directory.KindDeliveryPerson:
		persons, err := r.ListDeliveryPersons(ctx)
		return entities(persons, err)
	case directory.KindSender:
		var dtos []SenderDTO
		if err := db.Order(personOrder).Find(&dtos).Error; err != nil {
			return nil, err
		}
		return convert(dtos, senderToDomain)
	case directory.KindRecipient:
		var dtos []RecipientDTO
		if err := db.Order(personOrder).Find(&dtos).Error; err != nil {
			return nil, err
		}
		return convert(dtos, recipientToDomain)
	case directory.KindProduct:
		var dtos []ProductDTO
		if err := db.Order("name ASC").Find(&dtos).Error; err != nil {
			return nil, err
		}
		return convert(dtos, productToDomain)
	}
	return nil, kind.Validate()
}

const personOrder = "first_name ASC, last_name ASC"

func modelOf(kind directory.Kind) (any, error) {
	switch kind {
	case directory.KindZone:
		return &ZoneDTO{}, nil
	case directory.KindDeliveryPerson:
		return &DeliveryPersonDTO{}, nil
	case directory.KindSender:
		return &SenderDTO{}, nil
	case directory.KindRecipient:
		return &RecipientDTO{}, nil
	case directory.KindProduct:
		return &ProductDTO{}, nil
	}
	return nil, kind.Validate()
}

func contactRules(kind string, c directory.Contact) []pgerr.Rule {
	return []pgerr.Rule{
		{Column: "phone", Kind: kind, Field: "phone", Value: c.Phone()},
		{Column: "email", Kind: kind, Field: "email", Value: c.Email()},
	}
}

func entities[E directory.Entity](list []E, err error) ([]directory.Entity, error) {
	if err != nil {
		return nil, err
	}
	out := make([]directory.Entity, 0, len(list))
	for _, e := range list {
		out = append(out, e)
	}
	return out, nil
}

func convert[D any, E directory.Entity](dtos []D, toDomain func(D) (E, error)) ([]directory.Entity, error) {
	out := make([]directory.Entity, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
