package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
)

type interactionsRepo struct {
	db  dbtx
	now func() time.Time
}

const interactionColumns = `id, profile_id, song_id, type, rating, feedback, created_at`

func scanInteraction(row interface{ Scan(...any) error }) (domain.Interaction, error) {
	var (
		i      domain.Interaction
		typ    string
		rating sql.NullFloat64
	)
	err := row.Scan(
		&i.ID,
		&i.ProfileID,
		&i.SongID,
		&typ,
		&rating,
		&i.Feedback,
		&i.CreatedAt,
	)
	i.Type = domain.InteractionType(typ)
	if rating.Valid {
		i.Rating = &rating.Float64
	}
	return i, err
}

func (r *interactionsRepo) CreateInteraction(ctx context.Context, i domain.Interaction) error {
	var rating sql.NullFloat64
	if i.Rating != nil {
		rating = sql.NullFloat64{Float64: *i.Rating, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO interactions (`+interactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.ProfileID, i.SongID, string(i.Type), rating, i.Feedback, r.now(),
	)
	return mapConstraint(err)
}

func (r *interactionsRepo) GetInteraction(ctx context.Context, profileID, id string) (domain.Interaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+interactionColumns+` FROM interactions WHERE profile_id = ? AND id = ?`,
		profileID, id,
	)
	i, err := scanInteraction(row)
	if err != nil {
		return domain.Interaction{}, mapNotFound(err)
	}
	return i, nil
}

func (r *interactionsRepo) ListInteractions(ctx context.Context, profileID, songID string) ([]domain.Interaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+interactionColumns+` FROM interactions
		WHERE profile_id = ? AND (? = '' OR song_id = ?)
		ORDER BY id DESC`,
		profileID, songID, songID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Interaction{}
	for rows.Next() {
		i, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *interactionsRepo) DeleteInteraction(ctx context.Context, profileID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM interactions WHERE profile_id = ? AND id = ?`, profileID, id))
}
