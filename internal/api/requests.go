package api

import (
	"encoding/json"
	"regexp"

	"github.com/victorivanov/famhub/internal/models"
)

// Boundary validation: request structs check their own shape before any
// service call, so flows only ever see well-formed input.

var (
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	colorRegexp = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// fieldError describes a single invalid field in the details payload.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type registerRequest struct {
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (r *registerRequest) validate() []fieldError {
	var errs []fieldError
	if !emailRegexp.MatchString(r.Email) {
		errs = append(errs, fieldError{"email", "must be a valid email address"})
	}
	if len(r.Username) < 3 || len(r.Username) > 50 {
		errs = append(errs, fieldError{"username", "must be 3-50 characters"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, fieldError{"password", "must be at least 6 characters"})
	}
	return errs
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) validate() []fieldError {
	var errs []fieldError
	if !emailRegexp.MatchString(r.Email) {
		errs = append(errs, fieldError{"email", "must be a valid email address"})
	}
	if r.Password == "" {
		errs = append(errs, fieldError{"password", "must not be empty"})
	}
	return errs
}

// optionalString distinguishes an absent JSON key (Set false) from an
// explicit null (Set true, Value nil).
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

type updateProfileRequest struct {
	Username       *string        `json:"username"`
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
	PreferredColor optionalString `json:"preferred_color"`
}

func (r *updateProfileRequest) validate() []fieldError {
	var errs []fieldError
	if r.Username != nil && (len(*r.Username) < 3 || len(*r.Username) > 50) {
		errs = append(errs, fieldError{"username", "must be 3-50 characters"})
	}
	if v := r.PreferredColor.Value; r.PreferredColor.Set && v != nil && *v != "" && !colorRegexp.MatchString(*v) {
		errs = append(errs, fieldError{"preferred_color", "must be a 6-digit hex color like #A1B2C3"})
	}
	return errs
}

type createChannelRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsPrivate   bool    `json:"is_private"`
}

func (r *createChannelRequest) validate() []fieldError {
	var errs []fieldError
	if len(r.Name) < 1 || len(r.Name) > 100 {
		errs = append(errs, fieldError{"name", "must be 1-100 characters"})
	}
	return errs
}

type createMessageRequest struct {
	Content     string              `json:"content"`
	Attachments []models.Attachment `json:"attachments"`
}

func (r *createMessageRequest) validate() []fieldError {
	var errs []fieldError
	if len(r.Content) == 0 {
		errs = append(errs, fieldError{"content", "must not be empty"})
	}
	return errs
}
