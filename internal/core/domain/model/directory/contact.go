package directory

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"parceltracker/internal/pkg/errs"
)

const (
	maxNameLength  = 100
	maxPhoneLength = 20
	maxEmailLength = 100
)

// Contact holds the person fields shared by delivery persons, senders and recipients.
type Contact struct {
	firstName string
	lastName  string
	phone     string
	email     string
}

// NewContact trims every field and reports all violations joined.
func NewContact(firstName, lastName, phone, email string) (Contact, error) {
	c := Contact{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		phone:     strings.TrimSpace(phone),
		email:     strings.TrimSpace(email),
	}

	if err := errors.Join(
		requireText("firstName", c.firstName, maxNameLength),
		requireText("lastName", c.lastName, maxNameLength),
		requireText("phone", c.phone, maxPhoneLength),
		requireText("email", c.email, maxEmailLength),
		checkEmail(c.email),
	); err != nil {
		return Contact{}, err
	}
	return c, nil
}

func (c Contact) FirstName() string { return c.firstName }
func (c Contact) LastName() string  { return c.lastName }
func (c Contact) Phone() string     { return c.phone }
func (c Contact) Email() string     { return c.email }

// FullName is "first last".
func (c Contact) FullName() string {
	return c.firstName + " " + c.lastName
}

// EmailMatches compares addresses ignoring case and surrounding spaces.
func (c Contact) EmailMatches(email string) bool {
	return strings.EqualFold(c.email, strings.TrimSpace(email))
}

func requireText(name, value string, maxLen int) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if n := utf8.RuneCountInString(value); n > maxLen {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%d characters exceed the maximum of %d", n, maxLen))
	}
	return nil
}

func checkEmail(email string) error {
	if email == "" {
		return nil
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	return nil
}

func optionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
