package client

import "time"

// Client is an external system credential record. The password is stored
// encrypted and only ever leaves the service through the explicit secret
// endpoint.
type Client struct {
	ID                string
	Name              string
	Username          string
	PasswordEncrypted string
	OwnerID           *string // user who created this client
	Metadata          map[string]string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
