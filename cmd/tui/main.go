package main

import (
	"fmt"
	"os"

	"github.com/Prakul111/vibe-code-project/internal/config"
	"github.com/Prakul111/vibe-code-project/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

func main() {
	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "vibe needs an interactive terminal")
		os.Exit(1)
	}

	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		width, height = 80, 24
	}

	cfg := config.LoadClientConfig()

	app := tui.NewApp(cfg.APIEndpoint, width, height)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running vibe: %v\n", err)
		os.Exit(1)
	}
}
