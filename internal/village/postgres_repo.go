package village

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]Village, error)
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) List(ctx context.Context) ([]Village, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name FROM villages ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Village
	for rows.Next() {
		var v Village
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
