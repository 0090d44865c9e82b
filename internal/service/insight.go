package service

import (
	"context"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

type InsightRequest struct {
	Question string `json:"question" validate:"required"`
	Insight  string `json:"insight"`
}

func ValidateInsightRequest(req *InsightRequest) error {
	return validate.Struct(req)
}

// UpsertInsight replaces the user's insight for the given date, keeping at
// most one entry per day.
func UpsertInsight(ctx context.Context, repo storage.UserRepository, name string, req *InsightRequest, date string) (*internal.Insight, error) {
	user, err := repo.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}

	insight := internal.Insight{
		Question: req.Question,
		Insight:  req.Insight,
		Date:     date,
	}

	insights := make([]internal.Insight, 0, len(user.Insights)+1)
	for _, i := range user.Insights {
		if i.Date != date {
			insights = append(insights, i)
		}
	}
	insights = append(insights, insight)

	if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Insights: &insights}); err != nil {
		return nil, err
	}
	return &insight, nil
}
