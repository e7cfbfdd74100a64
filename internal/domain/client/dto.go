package client

import (
	"time"

	"github.com/hrcore/leave-backend-go/internal/pkg/validator"
)

type CreateClientRequest struct {
	Name     string            `json:"name"`
	Username string            `json:"username"`
	Password string            `json:"password"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateClientRequest struct {
	Name     *string           `json:"name,omitempty"`
	Username *string           `json:"username,omitempty"`
	Password *string           `json:"password,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Username != nil && validator.IsEmpty(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must not be empty",
		})
	}
	if r.Password != nil && validator.IsEmpty(*r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ClientResponse is the safe projection of a client: the encrypted password
// never appears in it.
type ClientResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Username  string            `json:"username"`
	OwnerID   *string           `json:"owner_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewClientResponse(c Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Username:  c.Username,
		OwnerID:   c.OwnerID,
		Metadata:  c.Metadata,
		CreatedAt: c.CreatedAt,
	}
}

type ClientSecretResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
