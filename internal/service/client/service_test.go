package client

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/leave-backend-go/internal/domain/client"
	"github.com/hrcore/leave-backend-go/internal/pkg/crypto"
)

type fakeClientRepo struct {
	clients map[string]client.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]client.Client)}
}

func (r *fakeClientRepo) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	newClient.ID = uuid.NewString()
	newClient.CreatedAt = time.Now().UTC()
	r.clients[newClient.ID] = newClient
	return newClient, nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id string) (client.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return client.Client{}, client.ErrClientNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, updated client.Client) error {
	if _, ok := r.clients[updated.ID]; !ok {
		return client.ErrClientNotFound
	}
	r.clients[updated.ID] = updated
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return client.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) List(ctx context.Context, limit int) ([]client.Client, error) {
	var out []client.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func newTestClientService(t *testing.T) (*ClientService, *fakeClientRepo) {
	t.Helper()
	repo := newFakeClientRepo()
	return NewClientService(repo, crypto.New("test-encryption-passphrase")), repo
}

func TestClientService_Create_EncryptsPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestClientService(t)

	created, err := svc.Create(ctx, client.CreateClientRequest{
		Name:     "Acme Corp",
		Username: "acme",
		Password: "plaintext-secret",
	}, "owner-id")
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext-secret", stored.PasswordEncrypted)
	assert.NotEmpty(t, stored.PasswordEncrypted)
	require.NotNil(t, stored.OwnerID)
	assert.Equal(t, "owner-id", *stored.OwnerID)
}

func TestClientService_GetSecret_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestClientService(t)

	created, err := svc.Create(ctx, client.CreateClientRequest{
		Name:     "Acme Corp",
		Username: "acme",
		Password: "plaintext-secret",
	}, "owner-id")
	require.NoError(t, err)

	secret, err := svc.GetSecret(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme", secret.Username)
	assert.Equal(t, "plaintext-secret", secret.Password)
}

func TestClientService_Update_ReencryptsPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestClientService(t)

	created, err := svc.Create(ctx, client.CreateClientRequest{
		Name:     "Acme Corp",
		Username: "acme",
		Password: "old-secret",
	}, "owner-id")
	require.NoError(t, err)

	newPassword := "new-secret"
	_, err = svc.Update(ctx, created.ID, client.UpdateClientRequest{Password: &newPassword})
	require.NoError(t, err)

	secret, err := svc.GetSecret(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-secret", secret.Password)
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestClientService(t)

	created, err := svc.Create(ctx, client.CreateClientRequest{
		Name:     "Acme Corp",
		Username: "acme",
		Password: "secret",
	}, "owner-id")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, client.ErrClientNotFound)
}
