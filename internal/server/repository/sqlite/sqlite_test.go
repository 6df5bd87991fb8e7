package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"simplesocial/internal/server/repository"
)

func TestUsers(t *testing.T) {
	repo, err := New("file:repo_users?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "u@example.com", []byte("h"))
	if err != nil {
		t.Fatal(err)
	}
	if user.ID == "" {
		t.Fatalf("user id empty")
	}
	id, hash, err := repo.GetUserByEmail(ctx, "u@example.com")
	if err != nil || id != user.ID || string(hash) != "h" {
		t.Fatalf("get by email: %v", err)
	}
	got, err := repo.GetUserByID(ctx, user.ID)
	if err != nil || got.Email != "u@example.com" {
		t.Fatalf("get by id: %v", err)
	}
	if _, _, err := repo.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := repo.CreateUser(ctx, "u@example.com", []byte("h2")); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
}

func TestPosts(t *testing.T) {
	repo, err := New("file:repo_posts?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	ctx := context.Background()

	alice, err := repo.CreateUser(ctx, "alice@example.com", []byte("h"))
	if err != nil {
		t.Fatal(err)
	}
	bob, err := repo.CreateUser(ctx, "bob@example.com", []byte("h"))
	if err != nil {
		t.Fatal(err)
	}

	p1, err := repo.CreatePost(ctx, repository.Post{OwnerID: alice.ID, FileType: "image", URL: "https://cdn/x/a.png", ObjectKey: "a.png", Caption: "hi"})
	if err != nil || p1.ID == "" || p1.CreatedAt.IsZero() {
		t.Fatalf("create: %v %+v", err, p1)
	}
	time.Sleep(5 * time.Millisecond)
	p2, err := repo.CreatePost(ctx, repository.Post{OwnerID: bob.ID, FileType: "video", URL: "https://cdn/x/b.mp4", ObjectKey: "b.mp4"})
	if err != nil {
		t.Fatal(err)
	}

	list, err := repo.ListPosts(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("list: %v %d", err, len(list))
	}
	if list[0].ID != p2.ID || list[1].ID != p1.ID {
		t.Fatalf("not newest first: %s %s", list[0].ID, list[1].ID)
	}
	if list[0].OwnerEmail != "bob@example.com" || list[1].OwnerEmail != "alice@example.com" {
		t.Fatalf("owner emails: %s %s", list[0].OwnerEmail, list[1].OwnerEmail)
	}

	got, err := repo.GetPost(ctx, p1.ID)
	if err != nil || got.Caption != "hi" || got.OwnerID != alice.ID {
		t.Fatalf("get: %v %+v", err, got)
	}

	// Only the owner's id matches the delete predicate.
	if err := repo.DeletePost(ctx, bob.ID, p1.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("foreign delete: %v", err)
	}
	if err := repo.DeletePost(ctx, alice.ID, p1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetPost(ctx, p1.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}
