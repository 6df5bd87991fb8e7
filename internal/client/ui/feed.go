package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"simplesocial/internal/client/api"
	"simplesocial/internal/client/session"
	"simplesocial/internal/overlay"
	"simplesocial/internal/shared/models"
)

type feedModel struct {
	styles   Styles
	viewport viewport.Model
	posts    []models.Post
	cursor   int
	loading  bool
	errText  string
	status   string
	width    int
	height   int
}

func newFeedModel(styles Styles) feedModel {
	vp := viewport.New(80, 20)
	return feedModel{styles: styles, viewport: vp, loading: true}
}

func (m *feedModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4
	m.refreshContent()
}

func (m *feedModel) setPosts(posts []models.Post) {
	m.posts = posts
	m.loading = false
	m.errText = ""
	if m.cursor >= len(posts) {
		m.cursor = 0
	}
	m.refreshContent()
}

func (m feedModel) selected() (models.Post, bool) {
	if m.cursor < 0 || m.cursor >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.cursor], true
}

func (m feedModel) update(msg tea.Msg, client *api.Client, sess *session.Session) (feedModel, page, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.refreshContent()
			return m, pageFeed, nil
		case "down", "j":
			if m.cursor < len(m.posts)-1 {
				m.cursor++
			}
			m.refreshContent()
			return m, pageFeed, nil
		case "r":
			m.loading = true
			m.status = ""
			return m, pageFeed, loadFeedCmd(client, sess.Token())
		case "u":
			return m, pageUpload, nil
		case "L":
			// Logout is local: clearing the session is the whole of it.
			return m, pageLogin, nil
		case "d":
			post, ok := m.selected()
			if !ok || !post.IsOwner {
				return m, pageFeed, nil
			}
			m.status = "Deleting..."
			return m, pageFeed, deletePostCmd(client, sess.Token(), post.ID)
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, pageFeed, cmd
}

func (m *feedModel) refreshContent() {
	m.viewport.SetContent(m.renderPosts())
}

func (m feedModel) renderPosts() string {
	if m.loading {
		return m.styles.Info.Render("Loading feed...")
	}
	if m.errText != "" {
		return m.styles.Error.Render(m.errText)
	}
	if len(m.posts) == 0 {
		return m.styles.Info.Render("No posts yet!")
	}
	var b strings.Builder
	for i, post := range m.posts {
		block := m.renderPost(post)
		if i == m.cursor {
			block = m.styles.Selected.Render(block)
		}
		b.WriteString(block)
		b.WriteString("\n" + strings.Repeat("─", mediaWidth) + "\n")
	}
	return b.String()
}

func (m feedModel) renderPost(post models.Post) string {
	var b strings.Builder
	b.WriteString(m.styles.PostMeta.Render(postMeta(post)))
	b.WriteString("\n")
	b.WriteString(m.styles.Media.Render(mediaURL(post)))
	if caption, ok := captionText(post); ok {
		b.WriteString("\n")
		b.WriteString(m.styles.Caption.Render(caption))
	}
	return m.styles.Post.Render(b.String())
}

func postMeta(post models.Post) string {
	meta := post.Email + " • " + post.CreatedAt.Format("02-01-2006")
	if post.IsOwner {
		meta += "   [d to delete]"
	}
	return meta
}

// mediaURL picks what to show for a post: images get the caption
// burned in by the CDN overlay, videos stay untransformed.
func mediaURL(post models.Post) string {
	if post.FileType == models.FileTypeImage {
		return overlay.TransformURL(post.URL, post.Caption)
	}
	return post.URL
}

// captionText reports the caption rendered as plain text beneath the
// media; only videos show one, and only when non-blank.
func captionText(post models.Post) (string, bool) {
	if post.FileType == models.FileTypeImage {
		return "", false
	}
	caption := strings.TrimSpace(post.Caption)
	return caption, caption != ""
}

func (m feedModel) view(sess *session.Session) string {
	var b strings.Builder
	title := "Feed"
	if u := sess.User(); u != nil {
		title = "Feed — " + u.Email
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("j/k move • d delete own post • r reload • u upload • L logout • ctrl+c quit"))
	return b.String()
}
