package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/dutyfree-helper/config"
	"github.com/andareed/dutyfree-helper/items"
	"github.com/andareed/dutyfree-helper/logging"
	"github.com/andareed/dutyfree-helper/store"
)

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", config.DefaultPath(), "path to the YAML config file")
	offline := flag.Bool("offline", false, "show cached items only, never call the API")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	if err := run(*configPath, *offline); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string, offline bool) error {
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("dfhelper %s: Started", Version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var client itemFetcher
	if !offline {
		c := items.NewClient(http.DefaultClient, cfg.API.URL,
			items.WithUserAgent(cfg.API.UserAgent),
			items.WithTimeout(cfg.API.Timeout),
		)
		logging.Infof("Fetching items from %s", c.URL())
		client = c
	} else {
		logging.Infof("Offline: showing cached items only")
	}

	var cache itemCache
	if cfg.Cache.On() {
		db, err := openCache(cfg.Cache.Path)
		if err != nil {
			logging.Warnf("Cache disabled: %v", err)
		} else {
			defer db.Close()
			cache = db
		}
	}

	m, err := newModel(cfg, client, cache)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		return err
	}
	return nil
}

func openCache(path string) (*store.SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return store.NewSQLite(path)
}
