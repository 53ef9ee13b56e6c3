package sqlite

import (
	"context"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
)

type parametersRepo struct {
	db  dbtx
	now func() time.Time
}

func (r *parametersRepo) PutParameter(ctx context.Context, p domain.Parameter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO parameters (name, value, secure, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE
		SET value = excluded.value, secure = excluded.secure, updated_at = excluded.updated_at`,
		p.Name, p.Value, p.Secure, r.now(),
	)
	return mapConstraint(err)
}

func (r *parametersRepo) GetParameter(ctx context.Context, name string) (domain.Parameter, error) {
	var p domain.Parameter
	err := r.db.QueryRowContext(ctx,
		`SELECT name, value, secure, updated_at FROM parameters WHERE name = ?`, name,
	).Scan(&p.Name, &p.Value, &p.Secure, &p.UpdatedAt)
	if err != nil {
		return domain.Parameter{}, mapNotFound(err)
	}
	return p, nil
}

func (r *parametersRepo) ListParameters(ctx context.Context) ([]domain.Parameter, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, value, secure, updated_at FROM parameters ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	params := []domain.Parameter{}
	for rows.Next() {
		var p domain.Parameter
		if err := rows.Scan(&p.Name, &p.Value, &p.Secure, &p.UpdatedAt); err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, rows.Err()
}

func (r *parametersRepo) DeleteParameter(ctx context.Context, name string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM parameters WHERE name = ?`, name))
}
