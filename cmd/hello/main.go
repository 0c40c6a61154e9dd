package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/easyterm/config"
	"github.com/lixenwraith/easyterm/logging"
	"github.com/lixenwraith/easyterm/terminal"
)

var configFlag = flag.String("config", "", "Path to a YAML config file")

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	s, err := terminal.Initialize(terminal.WithConfig(cfg), terminal.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	s.SetCursorVisibility(terminal.CursorInvisible)
	s.SetEcho(false)

	// Output starts at the top-left corner
	s.Print("Hello world.")
	s.Refresh()

	// Wait for a key so the message stays readable
	s.ReadInput()
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
