package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// APIError mirrors the error body of the HTTP API.
type APIError struct {
	Detail string `json:"detail"`
}

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

// Post is a feed entry as the API returns it. IsOwner is computed
// server-side against the caller's identity; clients must not infer
// ownership themselves.
type Post struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	FileType  FileType  `json:"file_type"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption"`
	IsOwner   bool      `json:"is_owner"`
}

type FeedResponse struct {
	Posts []Post `json:"posts"`
}
