package repository

import (
	"context"
	"encoding/json"

	"engagement-scheduler/core/cache"
	"engagement-scheduler/core/constants"
	"engagement-scheduler/core/logger"
	"engagement-scheduler/modules/schedule/entity"
)

// SelectionRepository persists the ordered selection list under a single
// key. Absence of the key means "nothing ever selected" and is reported
// separately from an empty list; an empty list is never stored.
type SelectionRepository interface {
	Load(ctx context.Context) ([]entity.BookedSlot, bool, error)
	Save(ctx context.Context, slots []entity.BookedSlot) error
	Remove(ctx context.Context) error
}

type cacheSelectionRepository struct {
	cache cache.Cache
	key   string
}

func NewSelectionRepository(c cache.Cache) SelectionRepository {
	return &cacheSelectionRepository{
		cache: c,
		key:   constants.CacheKeySelectedSlots,
	}
}

func (r *cacheSelectionRepository) Load(ctx context.Context) ([]entity.BookedSlot, bool, error) {
	raw, found, err := r.cache.Get(ctx, r.key)
	if err != nil {
		logger.Error("SelectionRepository:Load:Error", "error", err, "key", r.key)
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	var slots []entity.BookedSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		logger.Error("SelectionRepository:Load:Unmarshal:Error", "error", err, "key", r.key)
		return nil, false, err
	}
	return slots, true, nil
}

func (r *cacheSelectionRepository) Save(ctx context.Context, slots []entity.BookedSlot) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		logger.Error("SelectionRepository:Save:Marshal:Error", "error", err)
		return err
	}
	return r.cache.Set(ctx, r.key, string(raw))
}

func (r *cacheSelectionRepository) Remove(ctx context.Context) error {
	return r.cache.Del(ctx, r.key)
}
