package service

import (
	"context"
	"encoding/json"
	"maps"
	"strings"
	"time"

	"engagement-scheduler/core/constants"
	"engagement-scheduler/core/errors"
	"engagement-scheduler/core/logger"
	"engagement-scheduler/core/utils"
	"engagement-scheduler/modules/engagement/dto"
	"engagement-scheduler/modules/engagement/entity"
	"engagement-scheduler/modules/engagement/mapper"
	"engagement-scheduler/modules/engagement/repository"
	scheduleEntity "engagement-scheduler/modules/schedule/entity"
	scheduleRepository "engagement-scheduler/modules/schedule/repository"
)

// slot field names on the engagement record, in priority order
var slotFields = [constants.MaxPersistedSlots]string{"primary", "secondary", "tertiary"}

type EngagementServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateEngagementRequest) (*entity.Engagement, *errors.AppError)
	List(ctx context.Context, search string) ([]entity.Engagement, *errors.AppError)
	Get(ctx context.Context, id string) (*entity.Engagement, *errors.AppError)
	SyncSlots(ctx context.Context, id string) (*entity.Engagement, *errors.AppError)
}

// EngagementService persists engagement records in the external collection
// store and synchronizes the top three selected slots into them.
type EngagementService struct {
	store      repository.StoreRepositoryInterface
	selections scheduleRepository.SelectionRepository
	now        func() time.Time
}

func NewEngagementService(store repository.StoreRepositoryInterface, selections scheduleRepository.SelectionRepository) *EngagementService {
	return &EngagementService{
		store:      store,
		selections: selections,
		now:        time.Now,
	}
}

// Create validates the owner metadata, writes it to the store, and pairs
// the store-assigned id with a locally generated engagement reference. The
// reference is generated once per workflow and never re-derived.
func (s *EngagementService) Create(ctx context.Context, req *dto.CreateEngagementRequest) (*entity.Engagement, *errors.AppError) {
	if strings.TrimSpace(req.EngagementOwner) == "" || strings.TrimSpace(req.Speaker) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "engagementOwner and speaker are required", nil)
	}

	payload := map[string]any{
		"engagementOwner": req.EngagementOwner,
		"speaker":         req.Speaker,
		"caterer":         req.Caterer,
		"cohost":          req.Cohost,
	}

	raw, appErr := s.store.Create(ctx, payload)
	if appErr != nil {
		logger.Error("EngagementService:Create:Store:Error", "error", appErr)
		return nil, appErr
	}

	rec, err := mapper.NormalizeEngagement(raw)
	if err != nil {
		logger.Error("EngagementService:Create:Normalize:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "unrecognized record shape from collection store", err.Error())
	}
	rec.EngagementRef = utils.GenerateEngagementRef()

	logger.Info("EngagementService:Create:Success", "id", rec.ID, "engagementRef", rec.EngagementRef)
	return rec, nil
}

// List fetches every record, normalizes each at the boundary, and applies
// an optional case-insensitive search over the metadata fields.
func (s *EngagementService) List(ctx context.Context, search string) ([]entity.Engagement, *errors.AppError) {
	docs, appErr := s.store.ListRaw(ctx)
	if appErr != nil {
		logger.Error("EngagementService:List:Store:Error", "error", appErr)
		return nil, appErr
	}

	records := make([]entity.Engagement, 0, len(docs))
	for _, doc := range docs {
		rec, err := mapper.NormalizeEngagement(doc)
		if err != nil {
			logger.Error("EngagementService:List:Normalize:Error", "error", err)
			return nil, errors.NewAppError(errors.ErrInvalidRequestData, "unrecognized record shape from collection store", err.Error())
		}
		if search == "" || matchesSearch(rec, search) {
			records = append(records, *rec)
		}
	}
	return records, nil
}

func (s *EngagementService) Get(ctx context.Context, id string) (*entity.Engagement, *errors.AppError) {
	raw, appErr := s.store.GetRaw(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	rec, err := mapper.NormalizeEngagement(raw)
	if err != nil {
		logger.Error("EngagementService:Get:Normalize:Error", "error", err, "id", id)
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "unrecognized record shape from collection store", err.Error())
	}
	return rec, nil
}

// SyncSlots maps the first three selection entries onto the record fields
// primary/secondary/tertiary as snapshot copies, merging non-destructively:
// the current record is fetched first and every field not owned by the sync
// is carried over unchanged. Either the full merged record is written or
// nothing is.
func (s *EngagementService) SyncSlots(ctx context.Context, id string) (*entity.Engagement, *errors.AppError) {
	slots, stored, err := s.selections.Load(ctx)
	if err != nil {
		logger.Error("EngagementService:SyncSlots:LoadSelections:Error", "error", err, "id", id)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load selected slots", nil)
	}
	if !stored || len(slots) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "no slots selected", nil)
	}

	current, appErr := s.store.GetRaw(ctx, id)
	if appErr != nil {
		logger.Error("EngagementService:SyncSlots:Fetch:Error", "error", appErr, "id", id)
		return nil, appErr
	}

	topSlots := slots
	if len(topSlots) > constants.MaxPersistedSlots {
		topSlots = topSlots[:constants.MaxPersistedSlots]
	}

	merged := maps.Clone(current)
	for i, field := range slotFields {
		if i < len(topSlots) {
			snapshot, err := slotSnapshot(topSlots[i], i)
			if err != nil {
				logger.Error("EngagementService:SyncSlots:Snapshot:Error", "error", err, "id", id)
				return nil, errors.NewAppError(errors.ErrInternalServer, "failed to encode slot snapshot", nil)
			}
			merged[field] = snapshot
		} else {
			// a position without a selection is cleared, not left stale
			delete(merged, field)
		}
	}
	merged["totalSlotsSelected"] = len(topSlots)
	merged["updatedAt"] = s.now().UTC().Format(time.RFC3339)

	updated, appErr := s.store.Put(ctx, id, merged)
	if appErr != nil {
		logger.Error("EngagementService:SyncSlots:Put:Error", "error", appErr, "id", id)
		return nil, appErr
	}

	rec, err := mapper.NormalizeEngagement(updated)
	if err != nil {
		logger.Error("EngagementService:SyncSlots:Normalize:Error", "error", err, "id", id)
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "unrecognized record shape from collection store", err.Error())
	}

	logger.Info("EngagementService:SyncSlots:Success", "id", id, "totalSlotsSelected", len(topSlots))
	return rec, nil
}

// slotSnapshot copies a selection entry into the document shape persisted
// on the engagement record, stamped with its 1-based id and priority.
func slotSnapshot(slot scheduleEntity.BookedSlot, index int) (map[string]any, error) {
	slot.ID = index + 1
	slot.Priority = scheduleEntity.PriorityForIndex(index)

	encoded, err := json.Marshal(slot)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func matchesSearch(rec *entity.Engagement, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{rec.ID, rec.EngagementRef, rec.EngagementOwner, rec.Speaker, rec.Caterer, rec.Cohost, string(rec.Status)} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
