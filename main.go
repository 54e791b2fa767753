package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"safar/internal/config"
	"safar/internal/ui"
)

const maxLogBytes = 1 << 20

// main wires everything together: config dir, rotated log file, then the TUI.
func main() {
	configDir, err := config.GetConfigDir()
	if err != nil {
		fmt.Printf("could not get config dir: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		fmt.Printf("could not create config dir: %v\n", err)
		os.Exit(1)
	}

	logPath := filepath.Join(configDir, "safar.log")
	config.RotateLogIfNeeded(logPath, maxLogBytes)
	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Printf("could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.SetOutput(f)

	program := tea.NewProgram(ui.InitialModel())
	if _, err := program.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
