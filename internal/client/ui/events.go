package ui

import (
	"context"
	"errors"
	"mime"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"simplesocial/internal/client/api"
	"simplesocial/internal/shared/models"
)

// Page transitions are driven by these explicit events rather than an
// implicit rerun after every mutation.
type (
	loginSucceededMsg    struct{ token string }
	profileLoadedMsg     struct{ user models.User }
	registerSucceededMsg struct{}
	feedLoadedMsg        struct{ posts []models.Post }
	deleteSucceededMsg   struct{}
	uploadSucceededMsg   struct{}
	requestFailedMsg     struct {
		op  string
		err error
	}
)

const requestTimeout = 30 * time.Second

func loginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		token, err := client.Login(ctx, email, password)
		if err != nil {
			return requestFailedMsg{op: "login", err: err}
		}
		return loginSucceededMsg{token: token}
	}
}

func fetchProfileCmd(client *api.Client, token string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := client.Me(ctx, token)
		if err != nil {
			return requestFailedMsg{op: "profile", err: err}
		}
		return profileLoadedMsg{user: user}
	}
}

func registerCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := client.Register(ctx, email, password); err != nil {
			return requestFailedMsg{op: "register", err: err}
		}
		return registerSucceededMsg{}
	}
}

func loadFeedCmd(client *api.Client, token string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		posts, err := client.Feed(ctx, token)
		if err != nil {
			return requestFailedMsg{op: "feed", err: err}
		}
		return feedLoadedMsg{posts: posts}
	}
}

func deletePostCmd(client *api.Client, token, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := client.DeletePost(ctx, token, id); err != nil {
			return requestFailedMsg{op: "delete", err: err}
		}
		return deleteSucceededMsg{}
	}
}

func uploadCmd(client *api.Client, token, path, caption string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return requestFailedMsg{op: "upload", err: err}
		}
		name := filepath.Base(path)
		mimeType := mime.TypeByExtension(filepath.Ext(name))
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := client.Upload(ctx, token, name, mimeType, data, caption); err != nil {
			return requestFailedMsg{op: "upload", err: err}
		}
		return uploadSucceededMsg{}
	}
}

// friendlyError maps known API detail codes to readable text.
func friendlyError(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "Session expired, please log in again"
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Detail {
		case "LOGIN_BAD_CREDENTIALS":
			return "Invalid email or password"
		case "REGISTER_USER_ALREADY_EXISTS":
			return "An account with this email already exists"
		}
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
	}
	return err.Error()
}
