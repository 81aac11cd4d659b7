package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"engagement-scheduler/core/database"
	"engagement-scheduler/core/logger"
	"engagement-scheduler/modules/storedev/entity"

	"github.com/google/uuid"
)

// DocumentRepository stores raw JSON documents the way the external
// collection store would: opaque body, store-assigned id, timestamps.
type DocumentRepository struct {
	DB database.Database
}

func NewDocumentRepository(db database.Database) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

// InitSchema creates the documents table if it is missing. The stand-in is
// a development convenience; there is no migration tooling around it.
func (r *DocumentRepository) InitSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS engagement_documents (
			id UUID PRIMARY KEY,
			body JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if err := r.DB.ExecContext(ctx, query); err != nil {
		logger.Error("DocumentRepository:InitSchema:Error", "error", err)
		return err
	}
	return nil
}

func (r *DocumentRepository) List(ctx context.Context) ([]map[string]any, error) {
	query := `
		SELECT id, body, created_at, updated_at
		FROM engagement_documents
		ORDER BY created_at ASC
	`

	var rows []entity.EngagementDocument
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		logger.Error("DocumentRepository:List:Error", "error", err)
		return nil, err
	}

	docs := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		doc, err := mergeDocument(row)
		if err != nil {
			logger.Error("DocumentRepository:List:Merge:Error", "error", err, "id", row.ID)
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (map[string]any, error) {
	query := `
		SELECT id, body, created_at, updated_at
		FROM engagement_documents WHERE id = $1
	`

	var row entity.EngagementDocument
	err := r.DB.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DocumentRepository:Get:Error", "error", err, "id", id)
		return nil, err
	}
	return mergeDocument(row)
}

func (r *DocumentRepository) Create(ctx context.Context, body map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	row := entity.EngagementDocument{
		ID:        uuid.NewString(),
		Body:      raw,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO engagement_documents (id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	if err := r.DB.ExecContext(ctx, query, row.ID, row.Body, row.CreatedAt, row.UpdatedAt); err != nil {
		logger.Error("DocumentRepository:Create:Error", "error", err)
		return nil, err
	}
	return mergeDocument(row)
}

func (r *DocumentRepository) Update(ctx context.Context, id string, body map[string]any) (map[string]any, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE engagement_documents
		SET body = $2, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, id, raw); err != nil {
		logger.Error("DocumentRepository:Update:Error", "error", err, "id", id)
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) (map[string]any, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if err := r.DB.ExecContext(ctx, `DELETE FROM engagement_documents WHERE id = $1`, id); err != nil {
		logger.Error("DocumentRepository:Delete:Error", "error", err, "id", id)
		return nil, err
	}
	return existing, nil
}

// mergeDocument flattens a row into the response document: the raw body
// with id and timestamps injected, the shape clients of the real store see.
func mergeDocument(row entity.EngagementDocument) (map[string]any, error) {
	doc := map[string]any{}
	if err := json.Unmarshal(row.Body, &doc); err != nil {
		return nil, err
	}
	doc["id"] = row.ID
	if _, ok := doc["createdAt"]; !ok {
		doc["createdAt"] = row.CreatedAt.Format(time.RFC3339)
	}
	return doc, nil
}
