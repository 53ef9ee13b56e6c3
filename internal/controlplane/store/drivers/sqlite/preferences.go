package sqlite

import (
	"context"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
)

type preferencesRepo struct {
	db  dbtx
	now func() time.Time
}

const preferenceColumns = `id, profile_id, type, value, idx, weight, is_user_set, created_at, updated_at`

func scanPreference(row interface{ Scan(...any) error }) (domain.Preference, error) {
	var (
		p   domain.Preference
		typ string
	)
	err := row.Scan(
		&p.ID,
		&p.ProfileID,
		&typ,
		&p.Value,
		&p.Index,
		&p.Weight,
		&p.IsUserSet,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	p.Type = domain.PreferenceType(typ)
	return p, err
}

func (r *preferencesRepo) CreatePreference(ctx context.Context, p domain.Preference) error {
	now := r.now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (`+preferenceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ProfileID, string(p.Type), p.Value, p.Index, p.Weight, p.IsUserSet, now, now,
	)
	return mapConstraint(err)
}

func (r *preferencesRepo) GetPreference(ctx context.Context, profileID, id string) (domain.Preference, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+preferenceColumns+` FROM preferences WHERE profile_id = ? AND id = ?`,
		profileID, id,
	)
	p, err := scanPreference(row)
	if err != nil {
		return domain.Preference{}, mapNotFound(err)
	}
	return p, nil
}

func (r *preferencesRepo) ListPreferences(ctx context.Context, profileID string) ([]domain.Preference, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+preferenceColumns+` FROM preferences
		WHERE profile_id = ?
		ORDER BY type, idx, id`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prefs := []domain.Preference{}
	for rows.Next() {
		p, err := scanPreference(rows)
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

func (r *preferencesRepo) UpdatePreference(ctx context.Context, p domain.Preference) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE preferences
		SET type = ?, value = ?, idx = ?, weight = ?, is_user_set = ?, updated_at = ?
		WHERE profile_id = ? AND id = ?`,
		string(p.Type), p.Value, p.Index, p.Weight, p.IsUserSet, r.now(), p.ProfileID, p.ID,
	))
}

func (r *preferencesRepo) DeletePreference(ctx context.Context, profileID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE profile_id = ? AND id = ?`, profileID, id))
}
