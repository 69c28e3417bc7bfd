package directory

import (
	"errors"
	"strings"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"
)

const maxAddressLength = 255

// SenderClient ships parcels. Phone and email are unique.
type SenderClient struct {
	id      kernel.UUID
	contact Contact
	address string
}

func NewSenderClient(id kernel.UUID, contact Contact, address string) (*SenderClient, error) {
	address = strings.TrimSpace(address)
	if err := errors.Join(
		requireID(id),
		requireContact(contact),
		requireText("address", address, maxAddressLength),
	); err != nil {
		return nil, err
	}
	return &SenderClient{id: id, contact: contact, address: address}, nil
}

func (s *SenderClient) ID() kernel.UUID     { return s.id }
func (s *SenderClient) Kind() Kind          { return KindSender }
func (s *SenderClient) DisplayName() string { return s.contact.FullName() }
func (s *SenderClient) Contact() Contact    { return s.contact }
func (s *SenderClient) Address() string     { return s.address }

// Recipient receives parcels. Its email authorizes public tracking.
type Recipient struct {
	id      kernel.UUID
	contact Contact
	address string
}

func NewRecipient(id kernel.UUID, contact Contact, address string) (*Recipient, error) {
	address = strings.TrimSpace(address)
	if err := errors.Join(
		requireID(id),
		requireContact(contact),
		requireText("address", address, maxAddressLength),
	); err != nil {
		return nil, err
	}
	return &Recipient{id: id, contact: contact, address: address}, nil
}

func (r *Recipient) ID() kernel.UUID     { return r.id }
func (r *Recipient) Kind() Kind          { return KindRecipient }
func (r *Recipient) DisplayName() string { return r.contact.FullName() }
func (r *Recipient) Contact() Contact    { return r.contact }
func (r *Recipient) Address() string     { return r.address }

func requireContact(c Contact) error {
	if c.email == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	return nil
}
