package store

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/luispedrilho/genutra-backend/internal/models"
)

var planCols = []string{"id", "user_id", "nome", "objetivo", "data", "anamnese", "plano", "created_at"}

func planRow(id, userID, nome, objetivo, data string) []driver.Value {
	return []driver.Value{id, userID, nome, objetivo, data, []byte(`{}`), []byte(`{"resumo":"ok"}`), time.Now()}
}

func TestListPlans(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(planCols).
		AddRow(planRow("p2", "u1", "Bruno", "hipertrofia", "2025-08-19")...).
		AddRow(planRow("p1", "u1", "Ana", "perda de peso", "2025-08-01")...)
	mock.ExpectQuery(`ORDER BY data DESC, created_at DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	plans, err := New(db).ListPlans(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "2025-08-19", plans[0].Data)
	require.Equal(t, "Bruno", plans[0].Nome)
	require.JSONEq(t, `{"resumo":"ok"}`, string(plans[1].Plano))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlan_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM plans WHERE id = \$1 AND user_id = \$2`).
		WithArgs("missing", "u1").
		WillReturnRows(sqlmock.NewRows(planCols))

	_, err = New(db).GetPlan(context.Background(), "missing", "u1")
	require.ErrorIs(t, err, ErrPlanNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlan_OwnerScoped(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM plans WHERE id = \$1 AND user_id = \$2`).
		WithArgs("p1", "u1").
		WillReturnRows(sqlmock.NewRows(planCols).AddRow(planRow("p1", "u1", "Ana", "perda de peso", "2025-08-01")...))

	plan, err := New(db).GetPlan(context.Background(), "p1", "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", plan.UserID)
	require.Equal(t, "Ana", plan.Nome)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecentPlans(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM plans WHERE user_id = $1`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`LIMIT \$2 OFFSET \$3`).
		WithArgs("u1", 2, 0).
		WillReturnRows(sqlmock.NewRows(planCols).
			AddRow(planRow("p7", "u1", "Ana", "x", "2025-08-19")...).
			AddRow(planRow("p6", "u1", "Ana", "x", "2025-08-18")...))

	plans, total, err := New(db).ListRecentPlans(context.Background(), "u1", 2, 0)
	require.NoError(t, err)
	require.Equal(t, 7, total)
	require.Len(t, plans, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertPlan(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO plans`).
		WithArgs("u1", "Ana", "perda de peso", "2025-08-20", []byte(`{"nome":"Ana"}`), []byte(`{"resumo":"ok"}`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("p1", now))

	p := &models.Plan{
		UserID:   "u1",
		Nome:     "Ana",
		Objetivo: "perda de peso",
		Data:     "2025-08-20",
		Anamnese: []byte(`{"nome":"Ana"}`),
		Plano:    []byte(`{"resumo":"ok"}`),
	}
	require.NoError(t, New(db).InsertPlan(context.Background(), p))
	require.Equal(t, "p1", p.ID)
	require.Equal(t, now, p.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
