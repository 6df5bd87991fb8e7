package service

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"simplesocial/internal/server/config"
	"simplesocial/internal/server/repository"
	"simplesocial/internal/shared/models"
	"simplesocial/internal/shared/passhash"
)

type Repository interface {
	CreateUser(ctx context.Context, email string, passwordHash []byte) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (id string, passwordHash []byte, err error)
	GetUserByID(ctx context.Context, id string) (models.User, error)

	CreatePost(ctx context.Context, p repository.Post) (repository.Post, error)
	ListPosts(ctx context.Context) ([]repository.Post, error)
	GetPost(ctx context.Context, id string) (repository.Post, error)
	DeletePost(ctx context.Context, ownerID, id string) error
}

// MediaStore is the object storage the public media URLs point at.
type MediaStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

// Detail strings the frontend matches on; keep them stable.
var (
	ErrBadCredentials   = errors.New("LOGIN_BAD_CREDENTIALS")
	ErrEmailTaken       = errors.New("REGISTER_USER_ALREADY_EXISTS")
	ErrUnsupportedMedia = errors.New("unsupported file type")
)

type Services struct {
	Auth  *AuthService
	Posts *PostsService
}

func NewServices(repo Repository, media MediaStore, cfg config.Config) *Services {
	return &Services{
		Auth:  &AuthService{repo: repo, jwtSecret: []byte(cfg.JWTSecret)},
		Posts: &PostsService{repo: repo, media: media, maxUploadBytes: cfg.MaxUploadBytes},
	}
}

// AuthService implements registration, password verification and
// HS256 access token issuance.
type AuthService struct {
	repo      Repository
	jwtSecret []byte
}

func (a *AuthService) Register(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, errors.New("email and password required")
	}
	phc, err := passhash.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u, err := a.repo.CreateUser(ctx, email, []byte(phc))
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return models.User{}, ErrEmailTaken
	}
	return u, err
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	id, hash, err := a.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", ErrBadCredentials
	}
	ok, err := passhash.VerifyPassword(string(hash), password)
	if err != nil || !ok {
		return "", ErrBadCredentials
	}
	claims := jwt.MapClaims{
		"sub": id,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.jwtSecret)
}

func (a *AuthService) ParseToken(_ context.Context, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("invalid token subject")
	}
	return sub, nil
}

func (a *AuthService) Me(ctx context.Context, userID string) (models.User, error) {
	return a.repo.GetUserByID(ctx, userID)
}

// PostsService owns the feed: upload writes the object then the row,
// delete checks ownership in SQL and removes the object best effort.
type PostsService struct {
	repo           Repository
	media          MediaStore
	maxUploadBytes int64
}

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}
var videoExts = map[string]bool{".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".webm": true}

// ClassifyFile maps a file name to a feed file type by extension.
func ClassifyFile(name string) (models.FileType, error) {
	ext := strings.ToLower(path.Ext(name))
	switch {
	case imageExts[ext]:
		return models.FileTypeImage, nil
	case videoExts[ext]:
		return models.FileTypeVideo, nil
	default:
		return "", ErrUnsupportedMedia
	}
}

func (s *PostsService) Create(ctx context.Context, ownerID, fileName, contentType string, data []byte, caption string) (repository.Post, error) {
	if s.maxUploadBytes > 0 && int64(len(data)) > s.maxUploadBytes {
		return repository.Post{}, errors.New("file too large")
	}
	fileType, err := ClassifyFile(fileName)
	if err != nil {
		return repository.Post{}, err
	}
	key := uuid.NewString() + strings.ToLower(path.Ext(fileName))
	if err := s.media.Upload(ctx, key, data, contentType); err != nil {
		return repository.Post{}, err
	}
	post := repository.Post{
		OwnerID:   ownerID,
		FileType:  string(fileType),
		URL:       s.media.PublicURL(key),
		ObjectKey: key,
		Caption:   caption,
	}
	created, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		// keep storage consistent with the table
		_ = s.media.Remove(ctx, key)
		return repository.Post{}, err
	}
	return created, nil
}

// Feed returns every post newest first, with IsOwner computed for viewerID.
func (s *PostsService) Feed(ctx context.Context, viewerID string) ([]models.Post, error) {
	rows, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(rows))
	for _, p := range rows {
		posts = append(posts, models.Post{
			ID:        p.ID,
			Email:     p.OwnerEmail,
			CreatedAt: p.CreatedAt,
			FileType:  models.FileType(p.FileType),
			URL:       p.URL,
			Caption:   p.Caption,
			IsOwner:   p.OwnerID == viewerID,
		})
	}
	return posts, nil
}

func (s *PostsService) Delete(ctx context.Context, ownerID, id string) error {
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	if err := s.repo.DeletePost(ctx, ownerID, id); err != nil {
		return err
	}
	_ = s.media.Remove(ctx, post.ObjectKey)
	return nil
}
