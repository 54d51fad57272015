package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

func validateSheetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("stylesheet file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve stylesheet path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("stylesheet file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("stylesheet path %s is a directory", abs)
	}

	return nil
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

// terminalWidth reports the column count of writer when it is a terminal.
func terminalWidth(writer any) (int, bool) {
	file, ok := writer.(*os.File)
	if !ok || !termIsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
