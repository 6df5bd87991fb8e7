// Package ui is the interactive frontend: a three-state machine over
// {login, feed, upload} whose transitions are the explicit success
// events of the API operations.
package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"simplesocial/internal/client/api"
	"simplesocial/internal/client/session"
)

type page int

const (
	pageLogin page = iota
	pageFeed
	pageUpload
)

type Model struct {
	client *api.Client
	sess   *session.Session
	styles Styles

	page   page
	login  loginModel
	feed   feedModel
	upload uploadModel

	width  int
	height int
}

func New(client *api.Client, sess *session.Session) Model {
	styles := DefaultStyles()
	return Model{
		client: client,
		sess:   sess,
		styles: styles,
		page:   pageLogin,
		login:  newLoginModel(styles),
		feed:   newFeedModel(styles),
		upload: newUploadModel(styles),
	}
}

func Run(client *api.Client, sess *session.Session) error {
	p := tea.NewProgram(New(client, sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.feed.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.updatePage(msg)

	case loginSucceededMsg:
		// Token first; the profile fetch may still fail, leaving the
		// gate closed.
		m.sess.SetToken(msg.token)
		return m, fetchProfileCmd(m.client, msg.token)

	case profileLoadedMsg:
		user := msg.user
		m.sess.SetUser(&user)
		m.page = pageFeed
		m.login = m.login.reset()
		m.feed.loading = true
		return m, loadFeedCmd(m.client, m.sess.Token())

	case registerSucceededMsg:
		m.login.notice = "Account created! Log in now."
		m.login.errText = ""
		m.login.busy = false
		return m, nil

	case feedLoadedMsg:
		m.feed.setPosts(msg.posts)
		return m, nil

	case deleteSucceededMsg:
		m.feed.status = "Deleted"
		return m, loadFeedCmd(m.client, m.sess.Token())

	case uploadSucceededMsg:
		m.upload = m.upload.reset()
		m.page = pageFeed
		m.feed.status = "Posted!"
		m.feed.loading = true
		return m, loadFeedCmd(m.client, m.sess.Token())

	case requestFailedMsg:
		return m.handleFailure(msg), nil
	}

	return m.updatePage(msg)
}

func (m Model) handleFailure(msg requestFailedMsg) Model {
	// A rejected token on any protected call ends the session.
	if errors.Is(msg.err, api.ErrUnauthorized) && msg.op != "login" {
		m.sess.Clear()
		m.page = pageLogin
		m.login.errText = friendlyError(msg.err)
		m.login.busy = false
		return m
	}
	switch msg.op {
	case "login", "register":
		m.login.errText = friendlyError(msg.err)
		m.login.notice = ""
		m.login.busy = false
	case "profile":
		// Token stays set, but with no profile the gate never opens.
		m.login.errText = "Failed to get user info"
		m.login.busy = false
	case "feed":
		m.feed.loading = false
		m.feed.errText = "Failed to load feed"
	case "delete":
		m.feed.status = "Delete failed: " + friendlyError(msg.err)
	case "upload":
		m.upload.errText = friendlyError(msg.err)
		m.upload.busy = false
	}
	return m
}

func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case pageLogin:
		m.login, cmd = m.login.update(msg, m.client)
	case pageFeed:
		var next page
		m.feed, next, cmd = m.feed.update(msg, m.client, m.sess)
		if next == pageLogin {
			m.sess.Clear()
			m.login = m.login.reset()
		}
		m.page = next
	case pageUpload:
		var next page
		m.upload, next, cmd = m.upload.update(msg, m.client, m.sess)
		m.page = next
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.page {
	case pageFeed:
		return m.feed.view(m.sess)
	case pageUpload:
		return m.upload.view()
	default:
		return m.login.view()
	}
}
