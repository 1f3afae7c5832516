package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var sizePattern = regexp.MustCompile(`^\d+(B|KB|MB|GB|TB|PB)$`)

// validateSize validates the size format (e.g., "10MB", "1GB")
func validateSize(fl validator.FieldLevel) bool {
	return sizePattern.MatchString(strings.ToUpper(fl.Field().String()))
}

// validateSegment checks the value is usable as a single path segment
func validateSegment(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" || value == "." || value == ".." {
		return false
	}
	return !strings.ContainsAny(value, `/\`)
}

// validateEscapeChar checks the value is a single printable character that
// can stand in for a separator
func validateEscapeChar(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if utf8.RuneCountInString(value) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(value)
	switch r {
	case '/', '\\', '.', utf8.RuneError:
		return false
	}
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// expandPath expands environment variables and "~" in paths
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	path = os.ExpandEnv(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return abs, nil
}

// validateDirPath is a validation function for directory paths that works on any OS.
// The standard "dirpath" validator in go-playground/validator marks some
// valid paths as invalid, particularly on Windows (e.g. "C:\Users\name\.dir").
//
// An existing path must be a directory; "~" and environment variables are
// expanded first.
func validateDirPath(fl validator.FieldLevel) bool {
	path := strings.TrimSpace(fl.Field().String())
	if path == "" {
		return false
	}

	expanded, err := expandPath(path)
	if err != nil {
		return false
	}

	fi, err := os.Stat(expanded)
	if err == nil {
		return fi.IsDir()
	}
	return os.IsNotExist(err)
}
