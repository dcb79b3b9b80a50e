package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/commasplit"
	"github.com/iw2rmb/commasplit/internal/grapheme"
	"github.com/iw2rmb/commasplit/tokenize"
)

const emptyMarker = "∅"

type model struct {
	cfg    demoConfig
	input  textinput.Model
	keys   keyMap
	styles styles

	width  int
	tokens []string
}

func newModel(cfg demoConfig, r *lipgloss.Renderer) model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "a, b,c"
	in.SetValue(cfg.Text)
	in.Focus()

	return model{
		cfg:    cfg,
		input:  in,
		keys:   defaultKeyMap(),
		styles: newStyles(r),
		tokens: tokenize.Collect(cfg.Text),
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 0)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			m.tokens = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		m.tokens = tokenize.Collect(v)
	}
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(commasplit.Banner("commasplit-demo")))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderTokens())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render(m.footer()))
	return b.String()
}

func (m model) renderTokens() string {
	if len(m.tokens) == 0 {
		return m.styles.Empty.Render("no tokens")
	}

	digits := len(strconv.Itoa(len(m.tokens)))
	limit := m.tokenWidth(digits)
	lines := make([]string, 0, len(m.tokens))
	for i, tok := range m.tokens {
		gutter := m.styles.Gutter.Render(fmt.Sprintf("%*d │", digits, i+1))
		var text string
		if tok == "" {
			text = m.styles.Empty.Render(emptyMarker)
		} else {
			cut, _ := grapheme.Truncate(tok, limit)
			text = m.styles.Token.Render(cut)
		}
		lines = append(lines, gutter+" "+text)
	}
	return strings.Join(lines, "\n")
}

// tokenWidth is the cell budget for a token next to a gutter of digits.
func (m model) tokenWidth(digits int) int {
	limit := m.cfg.WidthLimit
	if m.width > 0 {
		avail := max(m.width-digits-3, 1)
		if limit <= 0 || avail < limit {
			limit = avail
		}
	}
	return limit
}

func (m model) footer() string {
	noun := "tokens"
	if len(m.tokens) == 1 {
		noun = "token"
	}
	return fmt.Sprintf("%d %s · %s %s · %s %s",
		len(m.tokens), noun,
		m.keys.Clear.Help().Key, m.keys.Clear.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc,
	)
}
