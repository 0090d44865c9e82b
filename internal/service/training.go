package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

type TrainingRequest struct {
	BodyPart string `json:"bodyPart" validate:"required"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=10"`
}

func ValidateTrainingRequest(req *TrainingRequest) error {
	return validate.Struct(req)
}

// AddTraining appends a training entry for the given date.
func AddTraining(ctx context.Context, repo storage.UserRepository, name string, req *TrainingRequest, date string) (*internal.TrainingEntry, error) {
	user, err := repo.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}

	entry := internal.TrainingEntry{
		ID:       uuid.NewString(),
		BodyPart: req.BodyPart,
		Rating:   req.Rating,
		Date:     date,
	}

	training := append(user.Training, entry)
	if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Training: &training}); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteTraining removes one entry by id. Unknown ids are a no-op.
func DeleteTraining(ctx context.Context, repo storage.UserRepository, name, trainingID string) ([]internal.TrainingEntry, error) {
	user, err := repo.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}

	training := make([]internal.TrainingEntry, 0, len(user.Training))
	for _, t := range user.Training {
		if t.ID != trainingID {
			training = append(training, t)
		}
	}

	if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Training: &training}); err != nil {
		return nil, err
	}
	return training, nil
}
