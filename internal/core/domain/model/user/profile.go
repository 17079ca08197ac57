package user

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// profile carries the identity and contact data shared by every user of the
// system. Customer, Courier and Cook embed it.
type profile struct {
	id        kernel.UUID
	name      string
	email     Email
	phone     Phone
	createdAt time.Time
	active    bool
}

func newProfile(name string, email Email, phone Phone) (profile, error) {
	p := profile{
		id:        kernel.NewUUID(),
		createdAt: time.Now().UTC(),
		active:    true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
	); err != nil {
		return profile{}, err
	}

	return p, nil
}

// ID returns the unique identifier of the user.
func (p *profile) ID() kernel.UUID {
	return p.id
}

// Name returns the user's display name.
func (p *profile) Name() string {
	return p.name
}

// SetName updates the display name.
func (p *profile) SetName(name string) error {
	return p.setName(name)
}

// Email returns the user's email address.
func (p *profile) Email() Email {
	return p.email
}

// SetEmail updates the email address.
func (p *profile) SetEmail(email Email) error {
	return p.setEmail(email)
}

// Phone returns the user's phone number.
func (p *profile) Phone() Phone {
	return p.phone
}

// SetPhone updates the phone number.
func (p *profile) SetPhone(phone Phone) error {
	return p.setPhone(phone)
}

// CreatedAt returns when the user was registered.
func (p *profile) CreatedAt() time.Time {
	return p.createdAt
}

// IsActive reports whether the user account is active.
func (p *profile) IsActive() bool {
	return p.active
}

// Activate enables the user account.
func (p *profile) Activate() {
	p.active = true
}

// Deactivate disables the user account.
func (p *profile) Deactivate() {
	p.active = false
}

func (p *profile) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *profile) setEmail(email Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	p.email = email
	return nil
}

func (p *profile) setPhone(phone Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	p.phone = phone
	return nil
}
