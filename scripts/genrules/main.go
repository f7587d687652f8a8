// Package main generates markdown documentation for the built-in rule
// catalogue.
//
// Usage:
//
//	go run ./scripts/genrules -outdir=docs
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/a11ytester/pkg/a11y/rules"
)

var outDirFlag = flag.String("outdir", "", "output directory (defaults to <project root>/docs)")

func main() {
	flag.Parse()

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	outDir := *outDirFlag
	if outDir == "" {
		outDir = filepath.Join(projectRoot, "docs")
	}
	if err := generateRuleDocs(outDir); err != nil {
		log.Fatalf("failed to generate rule docs: %v", err)
	}

	log.Println("Done!")
}

// generateRuleDocs writes rules.md into outDir.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	content := renderCatalogue(rules.All())
	if err := os.WriteFile(filepath.Join(outDir, "rules.md"), content, 0600); err != nil {
		return err
	}
	log.Printf("  Generated rules.md")
	return nil
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
