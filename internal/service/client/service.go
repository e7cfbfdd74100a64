package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrcore/leave-backend-go/internal/domain/client"
	"github.com/hrcore/leave-backend-go/internal/pkg/crypto"
)

type ClientService struct {
	clientRepo client.ClientRepository
	crypto     *crypto.Service
}

func NewClientService(clientRepo client.ClientRepository, cryptoService *crypto.Service) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		crypto:     cryptoService,
	}
}

func (s *ClientService) Create(ctx context.Context, req client.CreateClientRequest, ownerID string) (client.Client, error) {
	encrypted, err := s.crypto.EncryptString(req.Password)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to encrypt client password: %w", err)
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		Name:              req.Name,
		Username:          req.Username,
		PasswordEncrypted: encrypted,
		OwnerID:           &ownerID,
		Metadata:          req.Metadata,
	})
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	slog.Info("Client created", "client_id", created.ID, "owner_id", ownerID)
	return created, nil
}

func (s *ClientService) Update(ctx context.Context, id string, req client.UpdateClientRequest) (client.Client, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to get client by ID: %w", err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Username != nil {
		c.Username = *req.Username
	}
	if req.Password != nil {
		encrypted, err := s.crypto.EncryptString(*req.Password)
		if err != nil {
			return client.Client{}, fmt.Errorf("failed to encrypt client password: %w", err)
		}
		c.PasswordEncrypted = encrypted
	}
	if req.Metadata != nil {
		c.Metadata = req.Metadata
	}

	if err := s.clientRepo.Update(ctx, c); err != nil {
		return client.Client{}, fmt.Errorf("failed to update client: %w", err)
	}
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get client by ID: %w", err)
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (s *ClientService) List(ctx context.Context, limit int) ([]client.Client, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	clients, err := s.clientRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// GetSecret decrypts and returns a client's stored credential. Admin only;
// the route guard enforces that.
func (s *ClientService) GetSecret(ctx context.Context, id string) (client.ClientSecretResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.ClientSecretResponse{}, fmt.Errorf("failed to get client by ID: %w", err)
	}

	password, err := s.crypto.DecryptString(c.PasswordEncrypted)
	if err != nil {
		return client.ClientSecretResponse{}, fmt.Errorf("failed to decrypt client password: %w", err)
	}

	return client.ClientSecretResponse{
		ID:       c.ID,
		Username: c.Username,
		Password: password,
	}, nil
}
