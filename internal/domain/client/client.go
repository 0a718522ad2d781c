// Package client holds the Client entity: the party that commissions projects.
package client

import (
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
)

// Deletion is the removal policy applied to clients.
const Deletion = domain.HardDelete

const msgInvalidEmail = "must be a valid email address"

// Client is a customer record. Email is unique across all clients,
// whether active or not.
type Client struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	CompanyName string
	Address     string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Params carries the caller-supplied fields for a new Client.
// A nil Active defaults to true.
type Params struct {
	Name        string
	Email       string
	Phone       string
	CompanyName string
	Address     string
	Active      *bool
}

// New builds a validated Client with a fresh identity.
func New(p Params, now time.Time) (*Client, error) {
	active := true
	if p.Active != nil {
		active = *p.Active
	}

	c := &Client{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(p.Name),
		Email:       NormalizeEmail(p.Email),
		Phone:       strings.TrimSpace(p.Phone),
		CompanyName: strings.TrimSpace(p.CompanyName),
		Address:     strings.TrimSpace(p.Address),
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks business rules for the Client entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c *Client) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	switch {
	case strings.TrimSpace(c.Email) == "":
		fields["email"] = domain.MsgRequired
	case !ValidEmail(c.Email):
		fields["email"] = msgInvalidEmail
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch lists the client fields to change. Unset fields are kept.
type Patch struct {
	Name        domain.Field[string]
	Email       domain.Field[string]
	Phone       domain.Field[string]
	CompanyName domain.Field[string]
	Address     domain.Field[string]
	Active      domain.Field[bool]
}

// Apply returns a copy of c with the patch applied and UpdatedAt set to now.
// The receiver is never modified; the result is validated.
func (c *Client) Apply(p Patch, now time.Time) (*Client, error) {
	next := *c
	next.Name = strings.TrimSpace(p.Name.ApplyTo(c.Name))
	next.Email = NormalizeEmail(p.Email.ApplyTo(c.Email))
	next.Phone = strings.TrimSpace(p.Phone.ApplyTo(c.Phone))
	next.CompanyName = strings.TrimSpace(p.CompanyName.ApplyTo(c.CompanyName))
	next.Address = strings.TrimSpace(p.Address.ApplyTo(c.Address))
	next.Active = p.Active.ApplyTo(c.Active)
	next.UpdatedAt = now

	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

// NormalizeEmail trims and lower-cases an address so uniqueness checks are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email is a bare address with a hostname domain
// ("user@example.com", no display name).
func ValidEmail(email string) bool {
	return govalidator.StringLength(email, "3", "254") && govalidator.IsEmail(email)
}

// Detail is a read-only view of a client together with the projects that
// reference it. Projects is derived at read time and never persisted.
type Detail struct {
	Client
	Projects []project.Project
}
