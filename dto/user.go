package dto

import "strings"

// CreateUser is the registration input.
type CreateUser struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate trims the identity fields and checks every constraint.
func (d *CreateUser) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Username = strings.TrimSpace(d.Username)
	return check(d)
}

// LoginUser is the credential input. The password is deliberately not
// length-checked here so login failures stay indistinguishable from
// never-valid passwords.
type LoginUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (d *LoginUser) Validate() error {
	d.Username = strings.TrimSpace(d.Username)
	return check(d)
}

// UpdateUser is the profile edit input. Every field is optional but
// constrained when present; nil means "leave unchanged".
type UpdateUser struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Username *string `json:"username" validate:"omitempty,min=3"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

func (d *UpdateUser) Validate() error {
	if d.Name != nil {
		trimmed := strings.TrimSpace(*d.Name)
		d.Name = &trimmed
	}
	if d.Username != nil {
		trimmed := strings.TrimSpace(*d.Username)
		d.Username = &trimmed
	}
	return check(d)
}
