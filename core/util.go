package core

import (
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// RoundHalfUp rounds x to the nearest integer, halves away from zero for positive values.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Getwd returns the project root: the closest parent directory holding a go.mod.
// go test changes the working directory to the package being tested, so relative paths need an anchor.
// Falls back to the current working directory when no go.mod is found (e.g. an installed binary).
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
