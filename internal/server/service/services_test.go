package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"simplesocial/internal/server/config"
	"simplesocial/internal/server/repository"
	"simplesocial/internal/server/repository/sqlite"
	"simplesocial/internal/shared/models"
)

type memMedia struct {
	objects map[string][]byte
}

func newMemMedia() *memMedia { return &memMedia{objects: map[string][]byte{}} }

func (m *memMedia) Upload(_ context.Context, key string, data []byte, _ string) error {
	m.objects[key] = data
	return nil
}

func (m *memMedia) Remove(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memMedia) PublicURL(key string) string { return "https://cdn.example.com/app/" + key }

func newTestServices(t *testing.T, dsn string) *Services {
	t.Helper()
	repo, err := sqlite.New(dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return NewServices(repo, newMemMedia(), config.Config{JWTSecret: "test"})
}

func TestAuthRegisterLogin(t *testing.T) {
	svcs := newTestServices(t, "file:svc_auth_login?mode=memory&cache=shared")
	ctx := context.Background()
	u, err := svcs.Auth.Register(ctx, "u@example.com", "pass")
	if err != nil || u.ID == "" {
		t.Fatalf("register: %v", err)
	}
	token, err := svcs.Auth.Login(ctx, "u@example.com", "pass")
	if err != nil || token == "" {
		t.Fatalf("login failed: %v", err)
	}
	uid, err := svcs.Auth.ParseToken(ctx, token)
	if err != nil || uid != u.ID {
		t.Fatalf("parse failed: %v %q", err, uid)
	}
	me, err := svcs.Auth.Me(ctx, uid)
	if err != nil || me.Email != "u@example.com" {
		t.Fatalf("me: %v %+v", err, me)
	}
}

func TestAuthLogin_BadPassword(t *testing.T) {
	svcs := newTestServices(t, "file:svc_badpass?mode=memory&cache=shared")
	ctx := context.Background()
	if _, err := svcs.Auth.Register(ctx, "u@example.com", "pass"); err != nil {
		t.Fatal(err)
	}
	if _, err := svcs.Auth.Login(ctx, "u@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("want ErrBadCredentials, got %v", err)
	}
	if _, err := svcs.Auth.Login(ctx, "ghost@example.com", "pass"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("want ErrBadCredentials for unknown user, got %v", err)
	}
}

func TestAuthRegister_Duplicate(t *testing.T) {
	svcs := newTestServices(t, "file:svc_dup?mode=memory&cache=shared")
	ctx := context.Background()
	if _, err := svcs.Auth.Register(ctx, "u@example.com", "pass"); err != nil {
		t.Fatal(err)
	}
	if _, err := svcs.Auth.Register(ctx, "u@example.com", "pass2"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestAuthParseToken_Invalid(t *testing.T) {
	svcs := newTestServices(t, "file:svc_badtok?mode=memory&cache=shared")
	if _, err := svcs.Auth.ParseToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("want error")
	}
}

func TestClassifyFile(t *testing.T) {
	cases := []struct {
		name string
		want models.FileType
		ok   bool
	}{
		{"cat.jpg", models.FileTypeImage, true},
		{"CAT.JPEG", models.FileTypeImage, true},
		{"pic.png", models.FileTypeImage, true},
		{"clip.mp4", models.FileTypeVideo, true},
		{"clip.webm", models.FileTypeVideo, true},
		{"movie.MOV", models.FileTypeVideo, true},
		{"notes.txt", "", false},
		{"noext", "", false},
	}
	for _, c := range cases {
		got, err := ClassifyFile(c.name)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("%s: got %q err %v", c.name, got, err)
		}
		if !c.ok && !errors.Is(err, ErrUnsupportedMedia) {
			t.Fatalf("%s: want ErrUnsupportedMedia, got %v", c.name, err)
		}
	}
}

func TestPostsCreateFeedDelete(t *testing.T) {
	svcs := newTestServices(t, "file:svc_posts?mode=memory&cache=shared")
	ctx := context.Background()
	owner, err := svcs.Auth.Register(ctx, "owner@example.com", "pass")
	if err != nil {
		t.Fatal(err)
	}
	viewer, err := svcs.Auth.Register(ctx, "viewer@example.com", "pass")
	if err != nil {
		t.Fatal(err)
	}

	first, err := svcs.Posts.Create(ctx, owner.ID, "a.png", "image/png", []byte("x"), "first")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := svcs.Posts.Create(ctx, owner.ID, "b.mp4", "video/mp4", []byte("y"), "")
	if err != nil {
		t.Fatal(err)
	}

	feed, err := svcs.Posts.Feed(ctx, viewer.ID)
	if err != nil || len(feed) != 2 {
		t.Fatalf("feed: %v len=%d", err, len(feed))
	}
	if feed[0].ID != second.ID || feed[1].ID != first.ID {
		t.Fatalf("feed not newest first")
	}
	if feed[0].IsOwner || feed[1].IsOwner {
		t.Fatalf("viewer must not own posts")
	}
	if feed[1].Caption != "first" || feed[1].FileType != models.FileTypeImage {
		t.Fatalf("post fields: %+v", feed[1])
	}

	// Foreign delete is invisible, owner delete works.
	if err := svcs.Posts.Delete(ctx, viewer.ID, first.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("foreign delete: %v", err)
	}
	if err := svcs.Posts.Delete(ctx, owner.ID, first.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	feed, _ = svcs.Posts.Feed(ctx, owner.ID)
	if len(feed) != 1 {
		t.Fatalf("feed after delete: %d", len(feed))
	}
}

func TestPostsCreate_Unsupported(t *testing.T) {
	svcs := newTestServices(t, "file:svc_unsupported?mode=memory&cache=shared")
	ctx := context.Background()
	u, err := svcs.Auth.Register(ctx, "u@example.com", "pass")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svcs.Posts.Create(ctx, u.ID, "doc.pdf", "application/pdf", []byte("x"), ""); !errors.Is(err, ErrUnsupportedMedia) {
		t.Fatalf("want ErrUnsupportedMedia, got %v", err)
	}
}
