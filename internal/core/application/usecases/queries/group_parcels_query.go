package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGroupParcelsQueryIsNotConstructed = errors.New(
	"GroupParcelsQuery must be created via NewGroupParcelsQuery constructor",
)

// GroupDimension is the parcel attribute a count report is grouped by.
type GroupDimension string

const (
	GroupByStatus   GroupDimension = "status"
	GroupByPriority GroupDimension = "priority"
	GroupByZone     GroupDimension = "zone"
	GroupByCity     GroupDimension = "city"
)

// ParseGroupDimension accepts the dimension names in any case, surrounding
// spaces ignored.
func ParseGroupDimension(s string) (GroupDimension, error) {
	switch d := GroupDimension(strings.ToLower(strings.TrimSpace(s))); d {
	case GroupByStatus, GroupByPriority, GroupByZone, GroupByCity:
		return d, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("dimension", fmt.Errorf("%q is not a grouping dimension", s))
	}
}

// GroupParcelsQuery counts parcels per label of one dimension. Status and
// priority reports list every enumerated value. Cities are grouped ignoring
// case, as the city filters match them, and labeled with the first spelling in
// byte order. Parcels without zone are counted under
// directory.UnassignedZoneName; a real zone carrying that name is reported as
// "<name> (<zone id>)" so the two never merge.
type GroupParcelsQuery struct {
	dimension GroupDimension
	guard     guard.ConstructorGuard
}

// NewGroupParcelsQuery rejects unknown dimensions with a ValidationError on
// "dimension".
func NewGroupParcelsQuery(dimension GroupDimension) (GroupParcelsQuery, error) {
	if _, err := ParseGroupDimension(string(dimension)); err != nil {
		return GroupParcelsQuery{}, err
	}
	return GroupParcelsQuery{dimension: dimension, guard: guard.NewConstructorGuard()}, nil
}

func (q GroupParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGroupParcelsQueryIsNotConstructed)
}

func (q GroupParcelsQuery) Dimension() GroupDimension {
	return q.dimension
}

// GroupParcelsQueryHandler runs the grouping directly in SQL.
type GroupParcelsQueryHandler struct {
	db *gorm.DB
}

func NewGroupParcelsQueryHandler(db *gorm.DB) GroupParcelsQueryHandler {
	return GroupParcelsQueryHandler{db: db}
}

func (h GroupParcelsQueryHandler) Handle(ctx context.Context, query GroupParcelsQuery) (map[string]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make(map[string]int64)
	switch query.Dimension() {
	case GroupByStatus:
		for _, s := range parcel.Statuses() {
			groups[s.String()] = 0
		}
		return groups, h.collect(ctx, groups,
			`SELECT status AS label, COUNT(*) AS total FROM parcels GROUP BY status`)
	case GroupByPriority:
		for _, p := range parcel.Priorities() {
			groups[p.String()] = 0
		}
		return groups, h.collect(ctx, groups,
			`SELECT priority AS label, COUNT(*) AS total FROM parcels GROUP BY priority`)
	case GroupByCity:
		return groups, h.collect(ctx, groups, `
			SELECT MIN(destination_city COLLATE "C") AS label, COUNT(*) AS total
			FROM parcels
			GROUP BY lower(trim(destination_city))`)
	default:
		return groups, h.collectZones(ctx, groups)
	}
}

func (h GroupParcelsQueryHandler) collect(ctx context.Context, groups map[string]int64, statement string) error {
	rows, err := h.db.WithContext(ctx).Raw(statement).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			label string
			total int64
		)
		if err = rows.Scan(&label, &total); err != nil {
			return err
		}
		groups[label] = total
	}
	return rows.Err()
}

// collectZones groups on the zone id and labels the rows afterwards.
func (h GroupParcelsQueryHandler) collectZones(ctx context.Context, groups map[string]int64) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT CAST(z.id AS text) AS zone_id, z.name, COUNT(*) AS total
		FROM parcels p
		LEFT JOIN zones z ON z.id = p.zone_id
		GROUP BY z.id, z.name`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			zoneID *string
			name   *string
			total  int64
		)
		if err = rows.Scan(&zoneID, &name, &total); err != nil {
			return err
		}
		groups[zoneLabel(zoneID, name)] = total
	}
	return rows.Err()
}

func zoneLabel(zoneID, name *string) string {
	if zoneID == nil || name == nil {
		return directory.UnassignedZoneName
	}
	if *name == directory.UnassignedZoneName {
		return fmt.Sprintf("%s (%s)", *name, *zoneID)
	}
	return *name
}
