package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/roelfdiedericks/fillerclaw/internal/config"
	"github.com/roelfdiedericks/fillerclaw/internal/fillerwords"
	. "github.com/roelfdiedericks/fillerclaw/internal/logging"
	"github.com/roelfdiedericks/fillerclaw/internal/setup"
)

const version = "0.1.0"

func usage() {
	fmt.Fprintf(os.Stderr, `fillerclaw %s - filler word filtering for voice agents

Usage:
  fillerclaw words          manage the filler word list (interactive)
  fillerclaw check <text>   classify a transcript (exit 0 = filler only)
  fillerclaw version        print version
`, version)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if os.Args[1] == "version" {
		fmt.Printf("fillerclaw %s\n", version)
		return
	}

	// Load config before logging so the debug toggle applies
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := LevelInfo
	if cfg.Logging.Debug {
		level = LevelDebug
	}
	Init(&Config{Level: level})

	// Store failure at startup is fatal - nothing works without it
	manager, err := fillerwords.Open(fillerwords.Config{DBPath: cfg.Store.Path})
	if err != nil {
		L_fatal("failed to open filler word store: %v", err)
	}
	defer manager.Close()

	switch os.Args[1] {
	case "words":
		if err := setup.RunWordManager(manager.Store(), cfg); err != nil {
			L_fatal("word manager failed: %v", err)
		}

	case "check":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		text := strings.Join(os.Args[2:], " ")
		if manager.Classifier().IsOnlyFillerWords(text) {
			fmt.Println("filler")
			return
		}
		fmt.Println("speech")
		os.Exit(1)

	default:
		usage()
		os.Exit(2)
	}
}
