package sqlite

import (
	"context"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/store"
)

type profilesRepo struct {
	db  dbtx
	now func() time.Time
}

const profileColumns = `id, email, username, first_name, last_name, phone_number, password_hash, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.Username,
		&p.FirstName,
		&p.LastName,
		&p.PhoneNumber,
		&p.PasswordHash,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	now := r.now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Email, p.Username, p.FirstName, p.LastName, p.PhoneNumber, p.PasswordHash, now, now,
	)
	return mapConstraint(err)
}

func (r *profilesRepo) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *profilesRepo) ListProfiles(ctx context.Context, page store.Page) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+profileColumns+` FROM profiles
		ORDER BY id
		LIMIT ? OFFSET ?`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profilesRepo) UpdateProfile(ctx context.Context, p domain.Profile) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE profiles
		SET email = ?, username = ?, first_name = ?, last_name = ?,
		    phone_number = ?, password_hash = ?, updated_at = ?
		WHERE id = ?`,
		p.Email, p.Username, p.FirstName, p.LastName, p.PhoneNumber, p.PasswordHash, r.now(), p.ID,
	))
}

func (r *profilesRepo) DeleteProfile(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id))
}
