package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/store"
	"github.com/rhythmiq/controlplane/pkg/idx"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

type AiRuleService struct {
	Store store.Store
}

type CreateAiRuleInput struct {
	Name        string
	Description string
	Category    string
	Content     string
	IsActive    *bool // defaults to true
}

// UpdateAiRuleInput is a partial update; nil fields are left unchanged.
type UpdateAiRuleInput struct {
	Name        *string
	Description *string
	Category    *string
	Content     *string
	IsActive    *bool
}

func (s *AiRuleService) CreateAiRule(ctx context.Context, in CreateAiRuleInput) (domain.AiRule, error) {
	r := domain.AiRule{
		ID:          idx.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Content:     in.Content,
		IsActive:    true,
	}
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	if r.Name == "" || strings.TrimSpace(r.Content) == "" {
		return domain.AiRule{}, fmt.Errorf("%w: name and content are required", ErrInvalidInput)
	}

	if err := s.Store.AiRules().CreateAiRule(ctx, r); err != nil {
		return domain.AiRule{}, mapStoreErr(err)
	}

	created, err := s.Store.AiRules().GetAiRule(ctx, r.ID)
	if err != nil {
		return domain.AiRule{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("ai rule created", "rule_id", r.ID, "category", r.Category)
	return created, nil
}

func (s *AiRuleService) GetAiRule(ctx context.Context, id string) (domain.AiRule, error) {
	r, err := s.Store.AiRules().GetAiRule(ctx, id)
	return r, mapStoreErr(err)
}

func (s *AiRuleService) ListAiRules(ctx context.Context, activeOnly bool) ([]domain.AiRule, error) {
	rules, err := s.Store.AiRules().ListAiRules(ctx, activeOnly)
	return rules, mapStoreErr(err)
}

func (s *AiRuleService) UpdateAiRule(ctx context.Context, id string, in UpdateAiRuleInput) (domain.AiRule, error) {
	var updated domain.AiRule
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		r, err := tx.AiRules().GetAiRule(ctx, id)
		if err != nil {
			return err
		}

		setTrimmed(&r.Name, in.Name)
		setTrimmed(&r.Description, in.Description)
		setTrimmed(&r.Category, in.Category)
		if in.Content != nil {
			r.Content = *in.Content
		}
		if in.IsActive != nil {
			r.IsActive = *in.IsActive
		}
		if r.Name == "" || strings.TrimSpace(r.Content) == "" {
			return fmt.Errorf("%w: name and content must not be blank", ErrInvalidInput)
		}

		if err := tx.AiRules().UpdateAiRule(ctx, r); err != nil {
			return err
		}
		updated, err = tx.AiRules().GetAiRule(ctx, id)
		return err
	})
	if err != nil {
		return domain.AiRule{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("ai rule updated", "rule_id", id)
	return updated, nil
}

func (s *AiRuleService) DeleteAiRule(ctx context.Context, id string) error {
	if err := s.Store.AiRules().DeleteAiRule(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("ai rule deleted", "rule_id", id)
	return nil
}
