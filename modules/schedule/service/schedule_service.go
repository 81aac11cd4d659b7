package service

import (
	"context"
	"time"

	"engagement-scheduler/core/config"
	"engagement-scheduler/core/constants"
	"engagement-scheduler/core/errors"
	"engagement-scheduler/core/logger"
	"engagement-scheduler/modules/schedule/dto"
	"engagement-scheduler/modules/schedule/entity"
	"engagement-scheduler/modules/schedule/repository"
)

const (
	displayDateLayout = "2006-01-02"
	displayTimeLayout = "3:04 PM"
)

type ScheduleServiceInterface interface {
	DaySlots(ctx context.Context, day time.Time, timezone string, bufferEnabled bool) (*dto.DaySlotsResponse, *errors.AppError)
	ListSelections(ctx context.Context) (*dto.SelectionListResponse, *errors.AppError)
	AddSelection(ctx context.Context, req *dto.AddSlotRequest) (*dto.SelectionListResponse, *errors.AppError)
	DeleteSelection(ctx context.Context, index int) (*dto.SelectionListResponse, *errors.AppError)
	ClearSelections(ctx context.Context) *errors.AppError
	ChangeTimezone(req *dto.TimezoneChangeRequest) (*dto.TimezoneChangeResponse, *errors.AppError)
}

// ScheduleService owns the slot engine: candidate generation, booking and
// buffer checks, and the ordered selection list with positional priority.
type ScheduleService struct {
	repo         repository.SelectionRepository
	generator    *SlotGenerator
	bufferWindow time.Duration
	now          func() time.Time
}

func NewScheduleService(repo repository.SelectionRepository) *ScheduleService {
	window := time.Duration(constants.BufferWindowMinutes) * time.Minute
	if cfg, ok := config.GetSafe(); ok && cfg.Schedule.BufferMinutes > 0 {
		window = time.Duration(cfg.Schedule.BufferMinutes) * time.Minute
	}
	return &ScheduleService{
		repo:         repo,
		generator:    NewSlotGenerator(),
		bufferWindow: window,
		now:          time.Now,
	}
}

func (s *ScheduleService) filter(bufferEnabled bool) *BookingFilter {
	return &BookingFilter{
		BufferEnabled: bufferEnabled,
		BufferWindow:  s.bufferWindow,
	}
}

// DaySlots generates the candidate grid for one calendar day and annotates
// each candidate against the current selection list.
func (s *ScheduleService) DaySlots(ctx context.Context, day time.Time, timezone string, bufferEnabled bool) (*dto.DaySlotsResponse, *errors.AppError) {
	booked, _, err := s.repo.Load(ctx)
	if err != nil {
		logger.Error("ScheduleService:DaySlots:Load:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load selected slots", nil)
	}

	filter := s.filter(bufferEnabled)
	candidates := make([]dto.SlotCandidate, 0, s.generator.SlotsPerDay)
	for slot := range s.generator.SlotsForDay(day, timezone) {
		isBooked := filter.IsBooked(slot, booked)
		inBuffer := filter.IsInBuffer(slot, booked)
		candidates = append(candidates, dto.SlotCandidate{
			DateTime:    slot,
			DateTimeUTC: slot.UTC(),
			Display:     slot.Format(displayTimeLayout),
			Booked:      isBooked,
			InBuffer:    inBuffer,
			Selectable:  !isBooked && !inBuffer,
		})
	}

	return &dto.DaySlotsResponse{
		Date:     day.Format(displayDateLayout),
		Timezone: timezone,
		Buffer:   bufferEnabled,
		Slots:    candidates,
	}, nil
}

// ListSelections returns the stored list with priorities freshly derived
// from position.
func (s *ScheduleService) ListSelections(ctx context.Context) (*dto.SelectionListResponse, *errors.AppError) {
	slots, stored, err := s.repo.Load(ctx)
	if err != nil {
		logger.Error("ScheduleService:ListSelections:Load:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load selected slots", nil)
	}

	assignPriorities(slots)
	return &dto.SelectionListResponse{
		Slots:  slots,
		Count:  len(slots),
		Stored: stored,
	}, nil
}

// AddSelection appends a snapshot of the candidate to the end of the list.
// The add path re-validates the booking and buffer predicates even though
// the slot grid already disables colliding candidates.
func (s *ScheduleService) AddSelection(ctx context.Context, req *dto.AddSlotRequest) (*dto.SelectionListResponse, *errors.AppError) {
	if req.DateTime.IsZero() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "dateTime is required", nil)
	}

	slots, _, err := s.repo.Load(ctx)
	if err != nil {
		logger.Error("ScheduleService:AddSelection:Load:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load selected slots", nil)
	}

	candidate := req.DateTime.UTC()
	filter := s.filter(req.BufferEnabled)
	if filter.IsBooked(candidate, slots) {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "slot is already booked", nil)
	}
	if filter.IsInBuffer(candidate, slots) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "slot falls inside the buffer window of a booked slot", nil)
	}

	local := ConvertToZone(req.DateTime, req.Timezone)
	slots = append(slots, entity.BookedSlot{
		DateTimeUTC:     candidate,
		SelectedDate:    s.generator.DayStart(local, req.Timezone),
		SelectedTime:    local,
		Timezone:        req.Timezone,
		CreatedAt:       s.now().UTC(),
		DisplayDate:     local.Format(displayDateLayout),
		DisplayTime:     local.Format(displayTimeLayout),
		DisplayTimeZone: req.Timezone,
	})
	assignPriorities(slots)

	if err := s.repo.Save(ctx, slots); err != nil {
		logger.Error("ScheduleService:AddSelection:Save:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to persist selected slots", nil)
	}

	logger.Info("ScheduleService:AddSelection:Success", "dateTimeUTC", candidate, "count", len(slots))
	return &dto.SelectionListResponse{Slots: slots, Count: len(slots), Stored: true}, nil
}

// DeleteSelection removes the entry at index and renumbers the survivors.
// Deleting the last entry removes the persisted key entirely: downstream
// code reads "key absent" as "nothing ever selected / selection cleared",
// which is distinct from an empty stored list.
func (s *ScheduleService) DeleteSelection(ctx context.Context, index int) (*dto.SelectionListResponse, *errors.AppError) {
	slots, stored, err := s.repo.Load(ctx)
	if err != nil {
		logger.Error("ScheduleService:DeleteSelection:Load:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load selected slots", nil)
	}
	if !stored || index < 0 || index >= len(slots) {
		return nil, errors.NewAppError(errors.ErrNotFound, "no selected slot at that position", nil)
	}

	slots = append(slots[:index], slots[index+1:]...)

	if len(slots) == 0 {
		if err := s.repo.Remove(ctx); err != nil {
			logger.Error("ScheduleService:DeleteSelection:Remove:Error", "error", err)
			return nil, errors.NewAppError(errors.ErrDeleteFailed, "failed to clear selected slots", nil)
		}
		return &dto.SelectionListResponse{Slots: []entity.BookedSlot{}, Count: 0, Stored: false}, nil
	}

	assignPriorities(slots)
	if err := s.repo.Save(ctx, slots); err != nil {
		logger.Error("ScheduleService:DeleteSelection:Save:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to persist selected slots", nil)
	}

	return &dto.SelectionListResponse{Slots: slots, Count: len(slots), Stored: true}, nil
}

// ClearSelections removes the persisted list unconditionally.
func (s *ScheduleService) ClearSelections(ctx context.Context) *errors.AppError {
	if err := s.repo.Remove(ctx); err != nil {
		logger.Error("ScheduleService:ClearSelections:Error", "error", err)
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to clear selected slots", nil)
	}
	return nil
}

// ChangeTimezone re-projects an in-progress candidate into the new active
// zone so the calendar stays anchored to the same instant, not the same
// clock-face numbers.
func (s *ScheduleService) ChangeTimezone(req *dto.TimezoneChangeRequest) (*dto.TimezoneChangeResponse, *errors.AppError) {
	if req.DateTime.IsZero() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "dateTime is required", nil)
	}

	converted := ConvertToZone(req.DateTime, req.Timezone)
	return &dto.TimezoneChangeResponse{
		DateTime:    converted,
		DateTimeUTC: converted.UTC(),
		Timezone:    req.Timezone,
		DisplayDate: converted.Format(displayDateLayout),
		DisplayTime: converted.Format(displayTimeLayout),
	}, nil
}

// assignPriorities recomputes 1-based ids and positional priorities after
// any structural change to the list.
func assignPriorities(slots []entity.BookedSlot) {
	for i := range slots {
		slots[i].ID = i + 1
		slots[i].Priority = entity.PriorityForIndex(i)
	}
}
