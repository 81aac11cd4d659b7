package service

import (
	"context"
	"maps"

	"engagement-scheduler/core/errors"
	"engagement-scheduler/core/logger"
	engagementEntity "engagement-scheduler/modules/engagement/entity"
	"engagement-scheduler/modules/engagement/mapper"
	"engagement-scheduler/modules/engagement/repository"
)

type ReviewServiceInterface interface {
	Approve(ctx context.Context, id string) (*engagementEntity.Engagement, *errors.AppError)
	Decline(ctx context.Context, id string, confirmed bool) *errors.AppError
}

// ReviewService applies the approver's decision to an engagement record.
// Approve mutates status in place; Decline removes the record entirely and
// is terminal once confirmed.
type ReviewService struct {
	store repository.StoreRepositoryInterface
}

func NewReviewService(store repository.StoreRepositoryInterface) *ReviewService {
	return &ReviewService{store: store}
}

// Approve sets status=Approved via a full-record update. On failure the
// record is left unchanged and the error is surfaced for a manual retry.
func (s *ReviewService) Approve(ctx context.Context, id string) (*engagementEntity.Engagement, *errors.AppError) {
	current, appErr := s.store.GetRaw(ctx, id)
	if appErr != nil {
		logger.Error("ReviewService:Approve:Fetch:Error", "error", appErr, "id", id)
		return nil, appErr
	}

	merged := maps.Clone(current)
	merged["status"] = string(engagementEntity.StatusApproved)

	updated, appErr := s.store.Put(ctx, id, merged)
	if appErr != nil {
		logger.Error("ReviewService:Approve:Put:Error", "error", appErr, "id", id)
		return nil, appErr
	}

	rec, err := mapper.NormalizeEngagement(updated)
	if err != nil {
		logger.Error("ReviewService:Approve:Normalize:Error", "error", err, "id", id)
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "unrecognized record shape from collection store", err.Error())
	}

	logger.Info("ReviewService:Approve:Success", "id", id)
	return rec, nil
}

// Decline deletes the record after explicit confirmation. On success the
// flow exits; on failure the record remains untouched.
func (s *ReviewService) Decline(ctx context.Context, id string, confirmed bool) *errors.AppError {
	if !confirmed {
		return errors.NewAppError(errors.ErrInvalidInput, "decline requires explicit confirmation", nil)
	}

	if appErr := s.store.Delete(ctx, id); appErr != nil {
		logger.Error("ReviewService:Decline:Delete:Error", "error", appErr, "id", id)
		return appErr
	}

	logger.Info("ReviewService:Decline:Success", "id", id)
	return nil
}
