package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
)

type CommentRepository struct {
	db DB
}

func NewCommentRepository(db DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c item.Comment) (int64, error) {
	const q = `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES (@text, @item_id, @author_id, @created)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"text":      c.Text,
		"item_id":   c.ItemID,
		"author_id": c.AuthorID,
		"created":   c.Created,
	}).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}

// commentViewSelect resolves the author's display name in the same query.
const commentViewSelect = `
	SELECT c.id, c.text, u.name, c.created
	FROM comments c
	JOIN users u ON u.id = c.author_id`

func (r *CommentRepository) FindViewByID(ctx context.Context, id int64) (*queries.CommentView, error) {
	const q = commentViewSelect + `
	WHERE c.id = @id`

	var v queries.CommentView
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&v.ID, &v.Text, &v.AuthorName, &v.Created)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find comment", err)
	}
	return &v, nil
}

func (r *CommentRepository) FindAllByItem(ctx context.Context, itemID int64) ([]queries.CommentView, error) {
	const q = commentViewSelect + `
	WHERE c.item_id = @item_id
	ORDER BY c.created`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"item_id": itemID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query comments", err)
	}
	defer rows.Close()

	views := make([]queries.CommentView, 0)
	for rows.Next() {
		var v queries.CommentView
		if err := rows.Scan(&v.ID, &v.Text, &v.AuthorName, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return views, nil
}
