package sqlite

import (
	"context"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
)

type aiRulesRepo struct {
	db  dbtx
	now func() time.Time
}

const aiRuleColumns = `id, name, description, category, content, is_active, created_at, updated_at`

func scanAiRule(row interface{ Scan(...any) error }) (domain.AiRule, error) {
	var r domain.AiRule
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Description,
		&r.Category,
		&r.Content,
		&r.IsActive,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func (r *aiRulesRepo) CreateAiRule(ctx context.Context, rule domain.AiRule) error {
	now := r.now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ai_rules (`+aiRuleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rule.ID, rule.Name, rule.Description, rule.Category, rule.Content, rule.IsActive, now, now,
	)
	return mapConstraint(err)
}

func (r *aiRulesRepo) GetAiRule(ctx context.Context, id string) (domain.AiRule, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+aiRuleColumns+` FROM ai_rules WHERE id = ?`, id)
	rule, err := scanAiRule(row)
	if err != nil {
		return domain.AiRule{}, mapNotFound(err)
	}
	return rule, nil
}

func (r *aiRulesRepo) ListAiRules(ctx context.Context, activeOnly bool) ([]domain.AiRule, error) {
	query := `SELECT ` + aiRuleColumns + ` FROM ai_rules`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := []domain.AiRule{}
	for rows.Next() {
		rule, err := scanAiRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *aiRulesRepo) UpdateAiRule(ctx context.Context, rule domain.AiRule) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE ai_rules
		SET name = ?, description = ?, category = ?, content = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		rule.Name, rule.Description, rule.Category, rule.Content, rule.IsActive, r.now(), rule.ID,
	))
}

func (r *aiRulesRepo) DeleteAiRule(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM ai_rules WHERE id = ?`, id))
}
