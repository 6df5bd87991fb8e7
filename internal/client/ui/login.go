package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"simplesocial/internal/client/api"
)

type loginModel struct {
	styles   Styles
	email    textinput.Model
	password textinput.Model
	focus    int
	errText  string
	notice   string
	busy     bool
}

func newLoginModel(styles Styles) loginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email:    "
	email.Focus()
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{styles: styles, email: email, password: password}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) reset() loginModel {
	m.email.SetValue("")
	m.password.SetValue("")
	m.errText = ""
	m.notice = ""
	m.busy = false
	m.focus = 0
	m.email.Focus()
	m.password.Blur()
	return m
}

func (m loginModel) update(msg tea.Msg, client *api.Client) (loginModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.password.Focus()
				m.email.Blur()
			}
			return m, nil
		case tea.KeyEnter:
			return m.submit(client, false)
		case tea.KeyCtrlS:
			return m.submit(client, true)
		}
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m loginModel) submit(client *api.Client, signUp bool) (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if email == "" || password == "" {
		m.errText = "Enter your email and password"
		return m, nil
	}
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.errText = ""
	m.notice = ""
	if signUp {
		return m, registerCmd(client, email, password)
	}
	return m, loginCmd(client, email, password)
}

func (m loginModel) view() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome to Simple Social"))
	b.WriteString("\n\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")
	if m.errText != "" {
		b.WriteString(m.styles.Error.Render(m.errText))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(m.styles.Success.Render(m.notice))
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString(m.styles.Info.Render("Working..."))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("enter login • ctrl+s sign up • tab switch field • ctrl+c quit"))
	return b.String()
}
