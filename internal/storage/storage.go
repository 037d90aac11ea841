package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

// Storage handles persistence of the raw HTML cache and the program JSON
type Storage struct {
	rawPath     string
	programPath string
}

// New creates a Storage for the given cache and output paths, expanding a
// leading ~ and creating parent directories as needed.
func New(rawPath, programPath string) (*Storage, error) {
	rawPath, err := expandHome(rawPath)
	if err != nil {
		return nil, err
	}
	programPath, err = expandHome(programPath)
	if err != nil {
		return nil, err
	}

	for _, p := range []string{rawPath, programPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	return &Storage{
		rawPath:     rawPath,
		programPath: programPath,
	}, nil
}

// expandHome rewrites a leading ~/ to the user's home directory
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// RawPath returns the resolved raw HTML cache path
func (s *Storage) RawPath() string { return s.rawPath }

// ProgramPath returns the resolved program JSON path
func (s *Storage) ProgramPath() string { return s.programPath }

// HasRawHTML reports whether a cached raw HTML document exists
func (s *Storage) HasRawHTML() bool {
	_, err := os.Stat(s.rawPath)
	return err == nil
}

// LoadRawHTML reads the cached raw HTML document
func (s *Storage) LoadRawHTML() (string, error) {
	data, err := os.ReadFile(s.rawPath)
	if err != nil {
		return "", fmt.Errorf("reading raw HTML cache: %w", err)
	}
	return string(data), nil
}

// SaveRawHTML writes the raw HTML document to the cache
func (s *Storage) SaveRawHTML(html string) error {
	if err := os.WriteFile(s.rawPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing raw HTML cache: %w", err)
	}
	return nil
}

// LoadProgram reads the previously generated program JSON. A missing file
// is not an error: it returns (nil, nil) so first runs are distinguishable
// from read failures.
func (s *Storage) LoadProgram() (*schedule.Program, error) {
	data, err := os.ReadFile(s.programPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading program: %w", err)
	}

	var program schedule.Program
	if err := json.Unmarshal(data, &program); err != nil {
		return nil, fmt.Errorf("parsing program: %w", err)
	}

	return &program, nil
}

// SaveProgram writes the program document as indented JSON
func (s *Storage) SaveProgram(program *schedule.Program) error {
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding program: %w", err)
	}

	if err := os.WriteFile(s.programPath, data, 0644); err != nil {
		return fmt.Errorf("writing program: %w", err)
	}

	return nil
}
