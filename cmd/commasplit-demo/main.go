// Command commasplit-demo is an interactive preview of the tokenizer: the
// token list is rebuilt on every keystroke.
package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/commasplit/internal/config"
)

type demoConfig struct {
	Text       string `env:"COMMASPLIT_DEMO_TEXT" envDefault:"a, b,,c"`
	AltScreen  bool   `env:"COMMASPLIT_DEMO_ALT_SCREEN" envDefault:"true"`
	WidthLimit int    `env:"COMMASPLIT_DEMO_WIDTH_LIMIT" envDefault:"60"`
}

func main() {
	var cfg demoConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("commasplit-demo: %v", err)
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(newModel(cfg, lipgloss.DefaultRenderer()), opts...)
	if _, err := p.Run(); err != nil {
		config.Exitf("commasplit-demo: %v", err)
	}
}
