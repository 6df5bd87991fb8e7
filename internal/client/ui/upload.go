package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"simplesocial/internal/client/api"
	"simplesocial/internal/client/session"
)

type uploadModel struct {
	styles  Styles
	path    textinput.Model
	caption textinput.Model
	focus   int
	errText string
	busy    bool
}

func newUploadModel(styles Styles) uploadModel {
	path := textinput.New()
	path.Placeholder = "/path/to/photo.jpg"
	path.Prompt = "File:    "
	path.Focus()

	caption := textinput.New()
	caption.Placeholder = "What's on your mind?"
	caption.Prompt = "Caption: "
	caption.CharLimit = 500

	return uploadModel{styles: styles, path: path, caption: caption}
}

func (m uploadModel) reset() uploadModel {
	m.path.SetValue("")
	m.caption.SetValue("")
	m.errText = ""
	m.busy = false
	m.focus = 0
	m.path.Focus()
	m.caption.Blur()
	return m
}

func (m uploadModel) update(msg tea.Msg, client *api.Client, sess *session.Session) (uploadModel, page, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m.reset(), pageFeed, nil
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.path.Focus()
				m.caption.Blur()
			} else {
				m.caption.Focus()
				m.path.Blur()
			}
			return m, pageUpload, nil
		case tea.KeyEnter:
			path := strings.TrimSpace(m.path.Value())
			if path == "" {
				m.errText = "Choose a file first"
				return m, pageUpload, nil
			}
			if m.busy {
				return m, pageUpload, nil
			}
			m.busy = true
			m.errText = ""
			return m, pageUpload, uploadCmd(client, sess.Token(), path, m.caption.Value())
		}
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	cmds = append(cmds, cmd)
	m.caption, cmd = m.caption.Update(msg)
	cmds = append(cmds, cmd)
	return m, pageUpload, tea.Batch(cmds...)
}

func (m uploadModel) view() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Share Something"))
	b.WriteString("\n\n")
	b.WriteString(m.path.View())
	b.WriteString("\n")
	b.WriteString(m.caption.View())
	b.WriteString("\n\n")
	if m.errText != "" {
		b.WriteString(m.styles.Error.Render(m.errText))
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString(m.styles.Info.Render("Uploading..."))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("enter share • tab switch field • esc back to feed"))
	return b.String()
}
