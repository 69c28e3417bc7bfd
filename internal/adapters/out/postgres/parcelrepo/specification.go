package parcelrepo

import (
	"fmt"
	"strings"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// predicate narrows a parcel query. A nil predicate imposes no constraint.
type predicate func(*gorm.DB) *gorm.DB

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Where folds every criterion of c into a single scope; criteria are ANDed.
func Where(c ports.ParcelCriteria) func(*gorm.DB) *gorm.DB {
	predicates := []predicate{
		statusIs(c.Status),
		priorityIs(c.Priority),
		uuidColumnIs("zone_id", c.ZoneID),
		uuidColumnIs("delivery_person_id", c.DeliveryPersonID),
		uuidColumnIs("sender_id", c.SenderID),
		uuidColumnIs("recipient_id", c.RecipientID),
		cityContains(c.CityContains),
		cityEquals(c.CityEquals),
		unassigned(c.UnassignedOnly),
		priorityIn(c.PriorityIn),
		statusNot(c.StatusNot),
	}

	return func(db *gorm.DB) *gorm.DB {
		for _, p := range predicates {
			if p != nil {
				db = p(db)
			}
		}
		return db
	}
}

func statusIs(status *parcel.Status) predicate {
	if status == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status.String())
	}
}

func priorityIs(priority *parcel.Priority) predicate {
	if priority == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("priority = ?", priority.String())
	}
}

func uuidColumnIs(column string, id *kernel.UUID) predicate {
	if id == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", id.Bytes())
	}
}

func cityContains(fragment string) predicate {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(fragment)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`LOWER(destination_city) LIKE ? ESCAPE '\'`, pattern)
	}
}

func cityEquals(city string) predicate {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(destination_city) = LOWER(?)", city)
	}
}

func unassigned(only bool) predicate {
	if !only {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("delivery_person_id IS NULL")
	}
}

func priorityIn(priorities []parcel.Priority) predicate {
	if len(priorities) == 0 {
		return nil
	}
	names := make([]string, 0, len(priorities))
	for _, p := range priorities {
		names = append(names, p.String())
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("priority IN ?", names)
	}
}

func statusNot(status *parcel.Status) predicate {
	if status == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status <> ?", status.String())
	}
}

// OrderBy sorts by the requested field, then by id so pages are stable.
// Status and priority sort by their declared order, not alphabetically.
func OrderBy(sort ports.Sort) func(*gorm.DB) *gorm.DB {
	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}

	var expr string
	switch sort.Field {
	case ports.SortByWeight:
		expr = "weight"
	case ports.SortByPriority:
		expr = ordinal("priority", priorityNames())
	case ports.SortByStatus:
		expr = ordinal("status", statusNames())
	case ports.SortByDestinationCity:
		expr = "LOWER(destination_city)"
	default:
		expr = "created_at"
	}

	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderBy{Expression: clause.Expr{
			SQL: fmt.Sprintf("%s %s, id %s", expr, direction, direction),
		}})
	}
}

func ordinal(column string, values []string) string {
	var b strings.Builder
	b.WriteString("CASE ")
	b.WriteString(column)
	for i, v := range values {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", v, i)
	}
	b.WriteString(" END")
	return b.String()
}

func statusNames() []string {
	names := make([]string, 0, len(parcel.Statuses()))
	for _, s := range parcel.Statuses() {
		names = append(names, s.String())
	}
	return names
}

func priorityNames() []string {
	names := make([]string, 0, len(parcel.Priorities()))
	for _, p := range parcel.Priorities() {
		names = append(names, p.String())
	}
	return names
}
