package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lash-app/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const clientColumns = `id, name, email, phone, birth_date, postal_code, street, neighborhood, city, state, number, complement, favorite_procedure, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type clientRepository struct {
	db *sqlx.DB
}

func newClientRepository(db *sqlx.DB) *clientRepository {
	return &clientRepository{
		db: db,
	}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
	INSERT INTO client
	(id, name, email, phone, birth_date, postal_code, street, neighborhood, city, state, number, complement, favorite_procedure, created_at, updated_at)
	VALUES(uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.Phone,
		client.BirthDate,
		client.PostalCode,
		client.Street,
		client.Neighborhood,
		client.City,
		client.State,
		client.Number,
		client.Complement,
		client.FavoriteProcedure,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("db insert client: %w", err)
	}

	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	const query = `SELECT ` + clientColumns + ` FROM client WHERE id = uuid_to_bin(?);`

	var client domain.Client
	if err := r.db.GetContext(ctx, &client, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from client by id failed: %w", err)
	}

	return &client, nil
}

func (r *clientRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	const query = `SELECT ` + clientColumns + ` FROM client ORDER BY created_at DESC LIMIT ? OFFSET ?;`

	clients := make([]domain.Client, 0, limit)
	if err := r.db.SelectContext(ctx, &clients, query, limit, offset); err != nil {
		return nil, fmt.Errorf("select clients page failed: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM client;`

	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count clients failed: %w", err)
	}

	return count, nil
}

// SearchByName matches name case-insensitively anywhere in the client name.
// LIKE wildcards in name are matched literally.
func (r *clientRepository) SearchByName(ctx context.Context, name string) ([]domain.Client, error) {
	const query = `SELECT ` + clientColumns + ` FROM client WHERE LOWER(name) LIKE ? ORDER BY name ASC;`

	pattern := "%" + likeEscaper.Replace(strings.ToLower(name)) + "%"

	clients := make([]domain.Client, 0)
	if err := r.db.SelectContext(ctx, &clients, query, pattern); err != nil {
		return nil, fmt.Errorf("search clients by name failed: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	const query = `
	UPDATE client
	SET
		name = ?,
		email = ?,
		phone = ?,
		birth_date = ?,
		postal_code = ?,
		street = ?,
		neighborhood = ?,
		city = ?,
		state = ?,
		number = ?,
		complement = ?,
		favorite_procedure = ?,
		updated_at = ?
	WHERE id = uuid_to_bin(?);
	`
	_, err := r.db.ExecContext(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.BirthDate,
		client.PostalCode,
		client.Street,
		client.Neighborhood,
		client.City,
		client.State,
		client.Number,
		client.Complement,
		client.FavoriteProcedure,
		client.UpdatedAt,
		client.ID,
	)
	if err != nil {
		return fmt.Errorf("db update client: %w", err)
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM client WHERE id = uuid_to_bin(?);`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete client: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete client: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
