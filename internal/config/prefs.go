package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Preference keys. The store is a flat key→string map on disk; everything
// with cross-session lifetime goes through it.
const (
	PrefAuthenticated = "isAuthenticated"
	PrefPhone         = "phone"
	PrefTheme         = "theme"
	PrefTextSize      = "text_size"
	PrefLanguage      = "language"
	PrefVoiceFeedback = "voice_feedback"

	prefsFileName = "prefs.toml"
)

// Prefs is the persisted preference store. It is read once at startup (the
// auth flag seeds the initial screen) and written on login/logout and
// settings changes. All access happens on the UI goroutine.
type Prefs struct {
	dir    string
	values map[string]string
}

// LoadPrefs reads prefs.toml from dir. A missing file yields an empty store.
func LoadPrefs(dir string) *Prefs {
	p := &Prefs{dir: dir, values: make(map[string]string)}
	path := filepath.Join(dir, prefsFileName)
	if _, err := toml.DecodeFile(path, &p.values); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("prefs: %s unreadable, starting empty: %v", path, err)
		}
		p.values = make(map[string]string)
	}
	return p
}

// Get returns the stored value, or "" when the key is absent.
func (p *Prefs) Get(key string) string {
	return p.values[key]
}

// Set stores a value in memory. Call Save to persist.
func (p *Prefs) Set(key, value string) {
	p.values[key] = value
}

// Delete removes a key. Absent keys are left absent, not written as "".
func (p *Prefs) Delete(key string) {
	delete(p.values, key)
}

// IsAuthenticated reports whether the persisted auth flag is set. The flag's
// on-disk value is the literal string "true"; anything else counts as
// logged out.
func (p *Prefs) IsAuthenticated() bool {
	return p.values[PrefAuthenticated] == "true"
}

// Save writes the store back to prefs.toml, creating the directory if
// needed.
func (p *Prefs) Save() error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(p.values)
	if err != nil {
		return err
	}
	path := filepath.Join(p.dir, prefsFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Printf("prefs: saved %d keys to %s", len(p.values), path)
	return nil
}

// PrefsPath returns the on-disk location of the store, for the watcher.
func (p *Prefs) PrefsPath() string {
	return filepath.Join(p.dir, prefsFileName)
}
