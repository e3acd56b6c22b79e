package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (int64, error) {
	const q = `
		INSERT INTO users (name, email)
		VALUES (@name, @email)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": u.Name, "email": u.Email}).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	const q = `
		UPDATE users
		SET name = @name, email = @email
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": u.ID, "name": u.Name, "email": u.Email})
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (user.User, error) {
	const q = `SELECT id, name, email FROM users WHERE id = @id`

	var u user.User
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		return user.User{}, infra.WrapRepoErr("failed to find user", err)
	}
	return u, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE id = @id)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

// UserReadRepository serves the query side; it returns view models directly.
type UserReadRepository struct {
	db DB
}

func NewUserReadRepository(db DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	const q = `SELECT id, name, email FROM users WHERE id = @id`

	var v queries.UserView
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&v.ID, &v.Name, &v.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &v, nil
}

func (r *UserReadRepository) FindAll(ctx context.Context) ([]queries.UserView, error) {
	const q = `SELECT id, name, email FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query users", err)
	}
	defer rows.Close()

	views := make([]queries.UserView, 0)
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return views, nil
}

func (r *UserReadRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE id = @id)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}
