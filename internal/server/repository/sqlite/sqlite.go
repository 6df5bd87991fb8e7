package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"simplesocial/internal/server/repository"
	"simplesocial/internal/shared/models"
)

type Repository struct {
	db *sql.DB
}

func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash BLOB NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			file_type TEXT NOT NULL,
			url TEXT NOT NULL,
			object_key TEXT NOT NULL,
			caption TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			FOREIGN KEY(owner_id) REFERENCES users(id)
		);
		CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC);
	`); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

// Users

func (r *Repository) CreateUser(ctx context.Context, email string, passwordHash []byte) (models.User, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO users(id,email,password_hash,created_at) VALUES(?,?,?,?)`, id, email, passwordHash, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, repository.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return models.User{ID: id, Email: email, CreatedAt: now}, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (id string, passwordHash []byte, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT id,password_hash FROM users WHERE email = ?`, email)
	if err = row.Scan(&id, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, repository.ErrNotFound
		}
		return "", nil, err
	}
	return
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id,email,created_at FROM users WHERE id = ?`, id)
	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, repository.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

// Posts

func (r *Repository) CreatePost(ctx context.Context, p repository.Post) (repository.Post, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts(id, owner_id, file_type, url, object_key, caption, created_at)
		VALUES(?,?,?,?,?,?,?)
	`, p.ID, p.OwnerID, p.FileType, p.URL, p.ObjectKey, p.Caption, p.CreatedAt)
	if err != nil {
		return repository.Post{}, err
	}
	return p, nil
}

// ListPosts returns every post newest first. The feed is global, so
// there is no owner filter; callers decide per-viewer visibility bits.
func (r *Repository) ListPosts(ctx context.Context) ([]repository.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.owner_id, u.email, p.file_type, p.url, p.object_key, p.caption, p.created_at
		FROM posts p JOIN users u ON u.id = p.owner_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []repository.Post
	for rows.Next() {
		var p repository.Post
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.OwnerEmail, &p.FileType, &p.URL, &p.ObjectKey, &p.Caption, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) GetPost(ctx context.Context, id string) (repository.Post, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT p.id, p.owner_id, u.email, p.file_type, p.url, p.object_key, p.caption, p.created_at
		FROM posts p JOIN users u ON u.id = p.owner_id
		WHERE p.id = ?
	`, id)
	var p repository.Post
	if err := row.Scan(&p.ID, &p.OwnerID, &p.OwnerEmail, &p.FileType, &p.URL, &p.ObjectKey, &p.Caption, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.Post{}, repository.ErrNotFound
		}
		return repository.Post{}, err
	}
	return p, nil
}

// DeletePost removes a post only when ownerID matches the stored owner.
func (r *Repository) DeletePost(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE owner_id = ? AND id = ?`, ownerID, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
