package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luispedrilho/genutra-backend/internal/models"
)

var ErrPlanNotFound = errors.New("plano não encontrado")

const planColumns = `id, user_id, nome, objetivo, to_char(data, 'YYYY-MM-DD'), anamnese, plano, created_at`

// InsertPlan inserts a plan row owned by p.UserID and fills in the generated
// id and timestamp.
func (s *Store) InsertPlan(ctx context.Context, p *models.Plan) error {
	return s.db.QueryRowContext(ctx, `
		INSERT INTO plans (user_id, nome, objetivo, data, anamnese, plano)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.UserID, p.Nome, p.Objetivo, p.Data, []byte(p.Anamnese), []byte(p.Plano)).
		Scan(&p.ID, &p.CreatedAt)
}

// ListPlans returns every plan owned by userID, newest calendar date first.
func (s *Store) ListPlans(ctx context.Context, userID string) ([]models.Plan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+planColumns+`
		FROM plans WHERE user_id = $1
		ORDER BY data DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlans(rows)
}

// GetPlan fetches a single plan by id, filtered by owner. A missing row is
// ErrPlanNotFound; any other store error passes through.
func (s *Store) GetPlan(ctx context.Context, id, userID string) (*models.Plan, error) {
	var p models.Plan
	var anamnese, plano []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT `+planColumns+`
		FROM plans WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&p.ID, &p.UserID, &p.Nome, &p.Objetivo, &p.Data, &anamnese, &plano, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Anamnese = anamnese
	p.Plano = plano
	return &p, nil
}

// ListRecentPlans returns one page of plans plus the exact total count.
func (s *Store) ListRecentPlans(ctx context.Context, userID string, limit, offset int) ([]models.Plan, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM plans WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+planColumns+`
		FROM plans WHERE user_id = $1
		ORDER BY data DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	plans, err := scanPlans(rows)
	if err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

func scanPlans(rows *sql.Rows) ([]models.Plan, error) {
	plans := make([]models.Plan, 0)
	for rows.Next() {
		var p models.Plan
		var anamnese, plano []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.Nome, &p.Objetivo, &p.Data, &anamnese, &plano, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Anamnese = anamnese
		p.Plano = plano
		plans = append(plans, p)
	}
	return plans, rows.Err()
}
