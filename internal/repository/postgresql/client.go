package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrcore/leave-backend-go/internal/domain/client"
	"github.com/hrcore/leave-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

const clientColumns = `id, name, username, password_encrypted, owner_id, metadata, created_at, updated_at`

func scanClient(row pgx.Row) (client.Client, error) {
	var c client.Client
	var metadata []byte
	err := row.Scan(&c.ID, &c.Name, &c.Username, &c.PasswordEncrypted, &c.OwnerID, &metadata, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return client.Client{}, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &c.Metadata); err != nil {
			return client.Client{}, fmt.Errorf("failed to decode client metadata: %w", err)
		}
	}
	return c, nil
}

func marshalMetadata(metadata map[string]string) ([]byte, error) {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return json.Marshal(metadata)
}

func (r *clientRepositoryImpl) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	metadata, err := marshalMetadata(newClient.Metadata)
	if err != nil {
		return client.Client{}, err
	}

	query := `
		INSERT INTO clients (id, name, username, password_encrypted, owner_id, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	newClient.ID = uuid.NewString()
	err = q.QueryRow(ctx, query,
		newClient.ID, newClient.Name, newClient.Username, newClient.PasswordEncrypted, newClient.OwnerID, metadata,
	).Scan(&newClient.CreatedAt, &newClient.UpdatedAt)
	if err != nil {
		return client.Client{}, err
	}

	return newClient, nil
}

func (r *clientRepositoryImpl) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	c, err := scanClient(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, err
	}
	return c, nil
}

func (r *clientRepositoryImpl) Update(ctx context.Context, updated client.Client) error {
	q := GetQuerier(ctx, r.db)

	metadata, err := marshalMetadata(updated.Metadata)
	if err != nil {
		return err
	}

	query := `
		UPDATE clients
		SET name = $1, username = $2, password_encrypted = $3, metadata = $4, updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, updated.Name, updated.Username, updated.PasswordEncrypted, metadata, updated.ID)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", updated.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return client.ErrClientNotFound
	}
	return nil
}

func (r *clientRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", id, err)
	}
	if commandTag.RowsAffected() != 1 {
		return client.ErrClientNotFound
	}
	return nil
}

func (r *clientRepositoryImpl) List(ctx context.Context, limit int) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
