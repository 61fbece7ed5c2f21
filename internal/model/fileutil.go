package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Placeholder is substituted by Explorer with the clicked item's path.
const Placeholder = `"%1"`

// CommandTemplate builds the Command default value for an executable:
//
//	"C:\Tools\copypath.exe" "%1"
//
// The executable is quoted so paths with spaces survive Explorer's
// argument splitting.
func CommandTemplate(executablePath string) string {
	return fmt.Sprintf(`"%s" %s`, executablePath, Placeholder)
}

// ExecutableFromCommand extracts the executable path from a stored command.
// Both the quoted form written by CommandTemplate and the older unquoted
// form (`C:\Tools\copypath.exe "%1"`) are understood.
func ExecutableFromCommand(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return ""
	}

	if strings.HasPrefix(command, `"`) {
		// Quoted: everything up to the closing quote
		if end := strings.Index(command[1:], `"`); end >= 0 {
			return command[1 : end+1]
		}
		return strings.Trim(command, `"`)
	}

	// Unquoted: strip the trailing placeholder, the rest is the path
	if idx := strings.LastIndex(command, Placeholder); idx >= 0 {
		return strings.TrimSpace(command[:idx])
	}
	return command
}

// SameExecutable reports whether two executable paths name the same file.
// Windows paths are compared case-insensitively.
func SameExecutable(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ResolveExecutable returns the absolute path of the running executable.
func ResolveExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	exePath, err = filepath.Abs(exePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	if exePath == "" {
		return "", fmt.Errorf("empty executable path")
	}
	return exePath, nil
}
