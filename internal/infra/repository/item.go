package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
)

type ItemRepository struct {
	db DB
}

func NewItemRepository(db DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, itm item.Item) (int64, error) {
	const q = `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES (@name, @description, @available, @owner_id, @request_id)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"name":        itm.Name,
		"description": itm.Description,
		"available":   itm.Available,
		"owner_id":    itm.OwnerID,
		"request_id":  itm.RequestID,
	}).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, itm item.Item) error {
	const q = `
		UPDATE items
		SET name = @name, description = @description, available = @available
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":          itm.ID,
		"name":        itm.Name,
		"description": itm.Description,
		"available":   itm.Available,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM items WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (item.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = @id`

	var itm item.Item
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(
		&itm.ID, &itm.Name, &itm.Description, &itm.Available, &itm.OwnerID, &itm.RequestID,
	)
	if err != nil {
		return item.Item{}, infra.WrapRepoErr("failed to find item", err)
	}
	return itm, nil
}

const itemViewSelect = `
	SELECT id, name, description, available, owner_id, request_id
	FROM items`

// ItemReadRepository serves the query side; it returns view models directly.
type ItemReadRepository struct {
	db DB
}

func NewItemReadRepository(db DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

func (r *ItemReadRepository) queryItemViews(ctx context.Context, q string, args pgx.NamedArgs) ([]queries.ItemView, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query items", err)
	}
	defer rows.Close()

	views := make([]queries.ItemView, 0)
	for rows.Next() {
		var v queries.ItemView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &v.RequestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}

func (r *ItemReadRepository) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	const q = itemViewSelect + `
	WHERE id = @id`

	var v queries.ItemView
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(
		&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &v.RequestID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return &v, nil
}

func (r *ItemReadRepository) FindAllByOwner(ctx context.Context, ownerID int64, p queries.Page) ([]queries.ItemView, error) {
	const q = itemViewSelect + `
	WHERE owner_id = @owner_id
	ORDER BY id
	LIMIT @limit OFFSET @offset`

	return r.queryItemViews(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *ItemReadRepository) Search(ctx context.Context, text string, p queries.Page) ([]queries.ItemView, error) {
	const q = itemViewSelect + `
	WHERE available IS TRUE
	  AND (name ILIKE '%' || @text || '%' OR description ILIKE '%' || @text || '%')
	ORDER BY id
	LIMIT @limit OFFSET @offset`

	return r.queryItemViews(ctx, q, pgx.NamedArgs{
		"text": text, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *ItemReadRepository) FindAllByRequests(ctx context.Context, requestIDs []int64) (map[int64][]queries.ItemView, error) {
	const q = itemViewSelect + `
	WHERE request_id = ANY(@request_ids)
	ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"request_ids": requestIDs})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query items by requests", err)
	}
	defer rows.Close()

	byRequest := make(map[int64][]queries.ItemView, len(requestIDs))
	for rows.Next() {
		var v queries.ItemView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &v.RequestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		byRequest[*v.RequestID] = append(byRequest[*v.RequestID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return byRequest, nil
}
