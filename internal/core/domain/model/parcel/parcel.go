package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxDescriptionLength     = 255
	MaxDestinationCityLength = 100
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created through
	// NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
	ErrForeignHistoryEntry    = errors.New("history entry belongs to another parcel")
)

// Parcel is the aggregate root of the lifecycle manager: the shipped unit moving
// through the delivery pipeline.
//
// Parcel follows these invariants:
//   - id, sender, recipient and creation time never change after creation
//   - weight stays within kernel.MinWeight..kernel.MaxWeight
//   - status is the status of the latest history entry; every status change
//     records a HistoryEntry that the caller persists in the same transaction
//   - history timestamps never decrease for a parcel
//
// Directory references (sender, recipient, delivery person, zone, products) are
// plain ids. Resolving them for display is an explicit, separate read.
type Parcel struct {
	id              kernel.UUID
	description     *string
	weight          kernel.Weight
	status          Status
	statusChangedAt time.Time
	priority        Priority
	destinationCity string
	createdAt       time.Time

	senderID         kernel.UUID
	recipientID      kernel.UUID
	deliveryPersonID *kernel.UUID
	zoneID           *kernel.UUID

	items []LineItem

	// pendingHistory holds ledger entries recorded since the last PullHistory.
	pendingHistory []HistoryEntry
	events         []Event

	isConstructed bool
}

// NewParcel creates a parcel in CREATED status and records its first history
// entry (CREATED, no comment) at now. Every invalid argument is reported; the
// returned error joins all of them.
func NewParcel(
	id kernel.UUID,
	description *string,
	weight kernel.Weight,
	priority Priority,
	destinationCity string,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	items []LineItem,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:          Created,
		statusChangedAt: now,
		createdAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDescription(description),
		p.setWeight(weight),
		p.setPriority(priority),
		p.setDestinationCity(destinationCity),
		p.setSender(senderID),
		p.setRecipient(recipientID),
		requireTime("createdAt", now),
	); err != nil {
		return nil, err
	}
	p.items = append([]LineItem(nil), items...)

	entry, err := NewHistoryEntry(p.id, Created, nil, now)
	if err != nil {
		return nil, err
	}
	p.pendingHistory = append(p.pendingHistory, entry)
	p.events = append(p.events, CreatedEvent{ParcelID: p.id, Priority: p.priority, Weight: p.weight, At: now})

	return p, nil
}

// State is the persisted form of a Parcel used by RestoreParcel.
type State struct {
	ID               kernel.UUID
	Description      *string
	Weight           kernel.Weight
	Status           Status
	StatusChangedAt  time.Time
	Priority         Priority
	DestinationCity  string
	CreatedAt        time.Time
	SenderID         kernel.UUID
	RecipientID      kernel.UUID
	DeliveryPersonID *kernel.UUID
	ZoneID           *kernel.UUID
	Items            []LineItem
}

// RestoreParcel rebuilds a persisted parcel without recording history or events.
func RestoreParcel(s State) (*Parcel, error) {
	p := &Parcel{
		status:          s.Status,
		statusChangedAt: s.StatusChangedAt,
		createdAt:       s.CreatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setID(s.ID),
		p.setDescription(s.Description),
		p.setWeight(s.Weight),
		p.setPriority(s.Priority),
		p.setDestinationCity(s.DestinationCity),
		p.setSender(s.SenderID),
		p.setRecipient(s.RecipientID),
		s.Status.Validate(),
		requireTime("createdAt", s.CreatedAt),
	); err != nil {
		return nil, err
	}
	if s.DeliveryPersonID != nil {
		if err := p.AssignDeliveryPerson(*s.DeliveryPersonID); err != nil {
			return nil, err
		}
	}
	if s.ZoneID != nil {
		if err := p.AssignZone(*s.ZoneID); err != nil {
			return nil, err
		}
	}
	p.items = append([]LineItem(nil), s.Items...)

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares identity only.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Description returns nil when the parcel has no description.
func (p *Parcel) Description() *string {
	return p.description
}

func (p *Parcel) Weight() kernel.Weight {
	return p.weight
}

func (p *Parcel) Status() Status {
	return p.status
}

// StatusChangedAt is the timestamp of the latest history entry.
func (p *Parcel) StatusChangedAt() time.Time {
	return p.statusChangedAt
}

func (p *Parcel) Priority() Priority {
	return p.priority
}

func (p *Parcel) DestinationCity() string {
	return p.destinationCity
}

func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

func (p *Parcel) RecipientID() kernel.UUID {
	return p.recipientID
}

// DeliveryPersonID returns nil when the parcel is unassigned.
func (p *Parcel) DeliveryPersonID() *kernel.UUID {
	return p.deliveryPersonID
}

// ZoneID returns nil when the parcel has no zone.
func (p *Parcel) ZoneID() *kernel.UUID {
	return p.zoneID
}

// Items returns a copy; line items are fixed at creation.
func (p *Parcel) Items() []LineItem {
	return append([]LineItem(nil), p.items...)
}

// TotalValue sums the line item subtotals.
func (p *Parcel) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// IsAssignedTo reports whether deliveryPersonID is the parcel's assignee.
// An unassigned parcel is assigned to nobody.
func (p *Parcel) IsAssignedTo(deliveryPersonID kernel.UUID) bool {
	return p.deliveryPersonID != nil && p.deliveryPersonID.IsEqual(deliveryPersonID)
}

// IsHighPriorityPending reports URGENT/EXPRESS parcels not yet delivered.
func (p *Parcel) IsHighPriorityPending() bool {
	return p.priority.IsHigh() && p.status != Delivered
}

// ChangeDescription replaces the description; nil or blank clears it.
func (p *Parcel) ChangeDescription(description *string) error {
	return p.setDescription(description)
}

func (p *Parcel) ChangeWeight(weight kernel.Weight) error {
	return p.setWeight(weight)
}

func (p *Parcel) ChangePriority(priority Priority) error {
	return p.setPriority(priority)
}

func (p *Parcel) ChangeDestinationCity(city string) error {
	return p.setDestinationCity(city)
}

// AssignDeliveryPerson replaces the assignee. Whether the person exists is
// checked by the caller against the directory.
func (p *Parcel) AssignDeliveryPerson(deliveryPersonID kernel.UUID) error {
	if deliveryPersonID.Validate() != nil {
		return errs.NewValueIsRequiredError("deliveryPersonId")
	}
	p.deliveryPersonID = &deliveryPersonID
	return nil
}

// AssignZone replaces the zone. Like AssignDeliveryPerson it does not consult
// the directory.
func (p *Parcel) AssignZone(zoneID kernel.UUID) error {
	if zoneID.Validate() != nil {
		return errs.NewValueIsRequiredError("zoneId")
	}
	p.zoneID = &zoneID
	return nil
}

// ChangeStatus moves the parcel to status and records a history entry when the
// status actually differs. It returns false when status equals the current one.
//
// Any status may follow any other: the documented progression is not enforced
// here so that manual corrections remain possible.
func (p *Parcel) ChangeStatus(status Status, comment *string, at time.Time) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}
	if status == p.status {
		return false, nil
	}
	if err := p.RecordStatus(status, comment, at); err != nil {
		return false, err
	}
	return true, nil
}

// RecordStatus appends a history entry for status unconditionally, even when it
// repeats the current status (corrective ledger entries), and updates the
// cached status. A timestamp earlier than the latest entry is raised to it so
// the timeline stays ordered.
func (p *Parcel) RecordStatus(status Status, comment *string, at time.Time) error {
	if err := requireTime("timestamp", at); err != nil {
		return err
	}
	if at.Before(p.statusChangedAt) {
		at = p.statusChangedAt
	}

	entry, err := NewHistoryEntry(p.id, status, comment, at)
	if err != nil {
		return err
	}

	p.pendingHistory = append(p.pendingHistory, entry)
	p.applyStatus(status, entry.Comment(), at)
	return nil
}

// SyncStatus re-projects the cached status from latest, the entry that is the
// newest in the ledger after a corrective deletion. No history is recorded.
func (p *Parcel) SyncStatus(latest HistoryEntry) error {
	if err := latest.Validate(); err != nil {
		return err
	}
	if !latest.ParcelID().IsEqual(p.id) {
		return ErrForeignHistoryEntry
	}
	if latest.Status() == p.status && latest.Timestamp().Equal(p.statusChangedAt) {
		return nil
	}
	p.applyStatus(latest.Status(), nil, latest.Timestamp())
	return nil
}

// MarkDeleted records the deletion event. Removal itself is done by the repository.
func (p *Parcel) MarkDeleted(at time.Time) {
	p.events = append(p.events, DeletedEvent{ParcelID: p.id, At: at})
}

// PullHistory returns the history entries recorded since the last call and forgets them.
func (p *Parcel) PullHistory() []HistoryEntry {
	entries := p.pendingHistory
	p.pendingHistory = nil
	return entries
}

// PullEvents returns the domain events recorded since the last call and forgets them.
func (p *Parcel) PullEvents() []Event {
	events := p.events
	p.events = nil
	return events
}

func (p *Parcel) applyStatus(status Status, comment *string, at time.Time) {
	from := p.status
	p.status = status
	p.statusChangedAt = at
	if from != status {
		p.events = append(p.events, StatusChangedEvent{
			ParcelID: p.id,
			From:     from,
			To:       status,
			Comment:  comment,
			At:       at,
		})
	}
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Parcel) setDescription(description *string) error {
	normalized, err := NormalizeDescription(description)
	if err != nil {
		return err
	}
	p.description = normalized
	return nil
}

func (p *Parcel) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return errs.NewValueIsRequiredError("weight")
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	p.priority = priority
	return nil
}

func (p *Parcel) setDestinationCity(city string) error {
	normalized, err := NormalizeDestinationCity(city)
	if err != nil {
		return err
	}
	p.destinationCity = normalized
	return nil
}

func (p *Parcel) setSender(id kernel.UUID) error {
	if id.Validate() != nil {
		return errs.NewValueIsRequiredError("senderId")
	}
	p.senderID = id
	return nil
}

func (p *Parcel) setRecipient(id kernel.UUID) error {
	if id.Validate() != nil {
		return errs.NewValueIsRequiredError("recipientId")
	}
	p.recipientID = id
	return nil
}

func requireTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// NormalizeDescription trims description. Nil and blank values become nil;
// more than MaxDescriptionLength characters is a ValueIsInvalidError.
func NormalizeDescription(description *string) (*string, error) {
	if description == nil || strings.TrimSpace(*description) == "" {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*description)
	if n := utf8.RuneCountInString(trimmed); n > MaxDescriptionLength {
		return nil, errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("%d characters exceed the maximum of %d", n, MaxDescriptionLength))
	}
	return &trimmed, nil
}

// NormalizeDestinationCity trims city and requires 1 to MaxDestinationCityLength
// characters.
func NormalizeDestinationCity(city string) (string, error) {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError("destinationCity")
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxDestinationCityLength {
		return "", errs.NewValueIsInvalidErrorWithCause("destinationCity",
			fmt.Errorf("%d characters exceed the maximum of %d", n, MaxDestinationCityLength))
	}
	return trimmed, nil
}
