package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/easyterm/config"
	"github.com/lixenwraith/easyterm/logging"
	"github.com/lixenwraith/easyterm/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	accentFlag = flag.String("accent", "yellow", "Header color: black, red, green, yellow, blue, magenta, cyan, white")
)

// Draws every foreground/background pair as a grid, then echoes keys until q
func main() {
	flag.Parse()

	accent, ok := terminal.ParseColor(*accentFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown accent color %q\n", *accentFlag)
		os.Exit(2)
	}

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
		s.SetCharacterBreak(true)
		s.SetKeypad(true)

		drawGrid(s, accent)

		for {
			in, ok := s.ReadInput()
			if !ok {
				continue
			}
			switch {
			case in.Kind == terminal.InputCharacter && in.Rune == 'q':
				return
			case in.Kind == terminal.InputResize:
				drawGrid(s, accent)
			case in.Kind == terminal.InputCharacter && in.Rune == 'b':
				s.Beep()
			case in.Kind == terminal.InputCharacter && in.Rune == 'f':
				s.Flash()
			default:
				s.SetDefaultColors()
				s.MoveBottomLeft(0, 0)
				s.Print(fmt.Sprintf("%-30s", in.String()))
			}
		}
	}, terminal.WithConfig(cfg), terminal.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "palette: %v\n", err)
		os.Exit(1)
	}
}

func drawGrid(s *terminal.Session, accent terminal.Color) {
	s.SetDefaultColors()
	s.Clear()
	s.SetColorPair(accent, terminal.ColorBlack)
	s.SetBold(true)
	s.Print(fmt.Sprintf("%d pairs  [b]eep [f]lash [q]uit", s.RegisteredPairs()))
	s.SetBold(false)

	for _, p := range terminal.AllPairs() {
		row := 2 + int(p.Fg)
		col := 4 * int(p.Bg)
		if !s.Move(row, col) {
			continue
		}
		if !s.SetColorPair(p.Fg, p.Bg) {
			s.SetDefaultColors()
		}
		s.Print(fmt.Sprintf("%3d", p.ID()))
	}
	s.SetDefaultColors()
	s.Refresh()
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
