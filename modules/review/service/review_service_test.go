package service

import (
	"context"
	"testing"

	coreErrors "engagement-scheduler/core/errors"
	engagementEntity "engagement-scheduler/modules/engagement/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	docs map[string]map[string]any
	fail *coreErrors.AppError
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]map[string]any{}}
}

func (f *fakeStore) ListRaw(ctx context.Context) ([]map[string]any, *coreErrors.AppError) {
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]map[string]any, 0, len(f.docs))
	for _, doc := range f.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeStore) GetRaw(ctx context.Context, id string) (map[string]any, *coreErrors.AppError) {
	if f.fail != nil {
		return nil, f.fail
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, coreErrors.NewAppError(coreErrors.ErrNotFound, "record not found in collection store", nil)
	}
	return doc, nil
}

func (f *fakeStore) Create(ctx context.Context, payload map[string]any) (map[string]any, *coreErrors.AppError) {
	return nil, coreErrors.NewAppError(coreErrors.ErrInternalServer, "not used", nil)
}

func (f *fakeStore) Put(ctx context.Context, id string, payload map[string]any) (map[string]any, *coreErrors.AppError) {
	if f.fail != nil {
		return nil, f.fail
	}
	if _, ok := f.docs[id]; !ok {
		return nil, coreErrors.NewAppError(coreErrors.ErrNotFound, "record not found in collection store", nil)
	}
	f.docs[id] = payload
	return payload, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) *coreErrors.AppError {
	if f.fail != nil {
		return f.fail
	}
	if _, ok := f.docs[id]; !ok {
		return coreErrors.NewAppError(coreErrors.ErrNotFound, "record not found in collection store", nil)
	}
	delete(f.docs, id)
	return nil
}

func TestApprove(t *testing.T) {
	store := newFakeStore()
	store.docs["42"] = map[string]any{
		"id":              "42",
		"engagementOwner": "Dana",
		"speaker":         "Dr. Okafor",
		"venueNotes":      "loading dock",
	}
	svc := NewReviewService(store)

	rec, appErr := svc.Approve(context.Background(), "42")
	require.Nil(t, appErr)

	assert.Equal(t, engagementEntity.StatusApproved, rec.Status)
	assert.Equal(t, "Dana", rec.EngagementOwner)

	// full-record write: fields outside the status stay intact
	assert.Equal(t, "loading dock", store.docs["42"]["venueNotes"])
	assert.Equal(t, "Approved", store.docs["42"]["status"])
}

func TestApprove_RecordMissing(t *testing.T) {
	svc := NewReviewService(newFakeStore())

	_, appErr := svc.Approve(context.Background(), "missing")
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}

func TestApprove_PutFailureLeavesRecord(t *testing.T) {
	store := newFakeStore()
	store.docs["42"] = map[string]any{"id": "42", "engagementOwner": "Dana"}
	svc := NewReviewService(store)

	store.fail = coreErrors.NewAppError(coreErrors.ErrNetwork, "collection store is unreachable", nil)
	_, appErr := svc.Approve(context.Background(), "42")
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNetwork, appErr.Code)

	store.fail = nil
	_, hasStatus := store.docs["42"]["status"]
	assert.False(t, hasStatus)
}

func TestDecline_RequiresConfirmation(t *testing.T) {
	store := newFakeStore()
	store.docs["42"] = map[string]any{"id": "42"}
	svc := NewReviewService(store)

	appErr := svc.Decline(context.Background(), "42", false)
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidInput, appErr.Code)
	assert.Contains(t, store.docs, "42", "record untouched without confirmation")
}

func TestDecline_Confirmed(t *testing.T) {
	store := newFakeStore()
	store.docs["42"] = map[string]any{"id": "42"}
	svc := NewReviewService(store)

	require.Nil(t, svc.Decline(context.Background(), "42", true))
	assert.NotContains(t, store.docs, "42")
}

func TestDecline_RecordMissing(t *testing.T) {
	svc := NewReviewService(newFakeStore())

	appErr := svc.Decline(context.Background(), "missing", true)
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}
