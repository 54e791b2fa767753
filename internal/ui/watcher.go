package ui

import (
	"log"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// WatchConfigCmd blocks until the next .toml change in the config directory
// and reports it. config.toml and prefs.toml both live there, so an external
// edit to either hot-reloads the app. The command is re-issued after every
// message to keep watching.
func WatchConfigCmd(configDir string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Printf("watcher: could not create: %v", err)
			return nil
		}

		if err := watcher.Add(configDir); err != nil {
			log.Printf("watcher: could not watch %s: %v", configDir, err)
			watcher.Close()
			return nil
		}

		log.Printf("watcher: watching %s", configDir)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					watcher.Close()
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if !strings.HasSuffix(filepath.Base(event.Name), ".toml") {
					continue
				}
				// Subdirectories are not ours to reload from.
				if filepath.Dir(event.Name) != configDir {
					continue
				}
				log.Printf("watcher: change in %s", event.Name)
				watcher.Close()
				return ConfigChangedMsg{Path: event.Name}

			case err, ok := <-watcher.Errors:
				if !ok {
					watcher.Close()
					return nil
				}
				log.Printf("watcher: %v", err)
			}
		}
	}
}
