package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lash-app/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const anamneseColumns = `id, client_id, datetime, mascara, pregnant, eye_procedure, allergy, allergy_details, thyroid, eye_problem, eye_problem_details, oncological, sleeps_on_side, sleep_side_position, problem_to_report, preferred_procedure, mapping, style, lash_model, thickness, curl, adhesive, notes`

type anamneseRepository struct {
	db *sqlx.DB
}

func newAnamneseRepository(db *sqlx.DB) *anamneseRepository {
	return &anamneseRepository{
		db: db,
	}
}

func (r *anamneseRepository) Create(ctx context.Context, anamnese *domain.Anamnese) error {
	const query = `
	INSERT INTO anamnese (` + anamneseColumns + `)
	VALUES (uuid_to_bin(:id), uuid_to_bin(:client_id), :datetime, :mascara, :pregnant, :eye_procedure, :allergy, :allergy_details, :thyroid, :eye_problem, :eye_problem_details, :oncological, :sleeps_on_side, :sleep_side_position, :problem_to_report, :preferred_procedure, :mapping, :style, :lash_model, :thickness, :curl, :adhesive, :notes);
	`
	if _, err := r.db.NamedExecContext(ctx, query, anamnese); err != nil {
		return fmt.Errorf("db insert anamnese: %w", err)
	}

	return nil
}

// GetFirstByClientID returns the oldest record of the client. Ids are UUIDv7 so
// ordering by id is ordering by creation.
func (r *anamneseRepository) GetFirstByClientID(ctx context.Context, clientID uuid.UUID) (*domain.Anamnese, error) {
	const query = `SELECT ` + anamneseColumns + ` FROM anamnese WHERE client_id = uuid_to_bin(?) ORDER BY id ASC LIMIT 1;`

	var anamnese domain.Anamnese
	if err := r.db.GetContext(ctx, &anamnese, query, clientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from anamnese by client id failed: %w", err)
	}

	return &anamnese, nil
}

func (r *anamneseRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Anamnese, error) {
	const query = `SELECT ` + anamneseColumns + ` FROM anamnese ORDER BY datetime DESC LIMIT ? OFFSET ?;`

	anamneses := make([]domain.Anamnese, 0, limit)
	if err := r.db.SelectContext(ctx, &anamneses, query, limit, offset); err != nil {
		return nil, fmt.Errorf("select anamnese page failed: %w", err)
	}

	return anamneses, nil
}

func (r *anamneseRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM anamnese;`

	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count anamnese failed: %w", err)
	}

	return count, nil
}

func (r *anamneseRepository) Update(ctx context.Context, anamnese *domain.Anamnese) error {
	const query = `
	UPDATE anamnese
	SET
		datetime = :datetime,
		mascara = :mascara,
		pregnant = :pregnant,
		eye_procedure = :eye_procedure,
		allergy = :allergy,
		allergy_details = :allergy_details,
		thyroid = :thyroid,
		eye_problem = :eye_problem,
		eye_problem_details = :eye_problem_details,
		oncological = :oncological,
		sleeps_on_side = :sleeps_on_side,
		sleep_side_position = :sleep_side_position,
		problem_to_report = :problem_to_report,
		preferred_procedure = :preferred_procedure,
		mapping = :mapping,
		style = :style,
		lash_model = :lash_model,
		thickness = :thickness,
		curl = :curl,
		adhesive = :adhesive,
		notes = :notes
	WHERE id = uuid_to_bin(:id);
	`
	if _, err := r.db.NamedExecContext(ctx, query, anamnese); err != nil {
		return fmt.Errorf("db update anamnese: %w", err)
	}

	return nil
}

func (r *anamneseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM anamnese WHERE id = uuid_to_bin(?);`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete anamnese: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete anamnese: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
