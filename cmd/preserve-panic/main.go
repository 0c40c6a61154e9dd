package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/easyterm/config"
	"github.com/lixenwraith/easyterm/logging"
	"github.com/lixenwraith/easyterm/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	stackFlag  = flag.Bool("stack", false, "Print the panic stack trace")
)

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

	err = terminal.Do(func(s *terminal.Session) {
		s.SetCursorVisibility(terminal.CursorInvisible)
		s.SetEcho(false)
		s.Print("Hello world.")
		s.Refresh()
		s.ReadInput()
		panic("oh no")
	}, terminal.WithConfig(cfg), terminal.WithLogger(logger))

	// The terminal is already restored here, so plain stdout is safe
	var pe *terminal.PanicError
	switch {
	case err == nil:
	case errors.As(err, &pe):
		if msg, ok := pe.Message(); ok {
			fmt.Printf("Error Occurred: %s\n", msg)
		} else {
			fmt.Println("There was an error, but no error message.")
		}
		if *stackFlag {
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", pe.Stack)
		}
	default:
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
