package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
)

type RequestRepository struct {
	db DB
}

func NewRequestRepository(db DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req request.Request) (int64, error) {
	const q = `
		INSERT INTO requests (description, requester_id, created)
		VALUES (@description, @requester_id, @created)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"description":  req.Description,
		"requester_id": req.RequesterID,
		"created":      req.Created,
	}).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create request", err)
	}
	return id, nil
}

const requestViewSelect = `
	SELECT id, description, created
	FROM requests`

// RequestReadRepository serves the query side. Responses to a request are
// attached by the usecase layer, so Items starts out empty here.
type RequestReadRepository struct {
	db DB
}

func NewRequestReadRepository(db DB) *RequestReadRepository {
	return &RequestReadRepository{db: db}
}

func (r *RequestReadRepository) queryRequestViews(ctx context.Context, q string, args pgx.NamedArgs) ([]queries.RequestView, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query requests", err)
	}
	defer rows.Close()

	views := make([]queries.RequestView, 0)
	for rows.Next() {
		v := queries.RequestView{Items: []queries.ItemView{}}
		if err := rows.Scan(&v.ID, &v.Description, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	return views, nil
}

func (r *RequestReadRepository) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	const q = requestViewSelect + `
	WHERE id = @id`

	v := queries.RequestView{Items: []queries.ItemView{}}
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&v.ID, &v.Description, &v.Created)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find request", err)
	}
	return &v, nil
}

func (r *RequestReadRepository) FindAllByRequester(ctx context.Context, requesterID int64) ([]queries.RequestView, error) {
	const q = requestViewSelect + `
	WHERE requester_id = @requester_id
	ORDER BY created`

	return r.queryRequestViews(ctx, q, pgx.NamedArgs{"requester_id": requesterID})
}

func (r *RequestReadRepository) FindAllByOthers(ctx context.Context, requesterID int64, p queries.Page) ([]queries.RequestView, error) {
	const q = requestViewSelect + `
	WHERE requester_id <> @requester_id
	ORDER BY created
	LIMIT @limit OFFSET @offset`

	return r.queryRequestViews(ctx, q, pgx.NamedArgs{
		"requester_id": requesterID, "limit": p.Limit, "offset": p.Offset,
	})
}
