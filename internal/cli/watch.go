// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/validoc/validoc/internal/config"
	"github.com/validoc/validoc/internal/loader"
	"github.com/validoc/validoc/internal/openapi"
)

var (
	watchDebounce int
	watchOnChange string
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Watch route files and regenerate on change",
	Long: `Watch route files for changes and automatically regenerate the document.

This command monitors your route files and triggers a regeneration when
they are modified. It's useful during development to keep your API
documentation in sync with your routes.

Example:
  validoc watch                          # Watch configured source paths
  validoc watch ./routes                 # Watch a specific directory
  validoc watch --debounce 1000          # Wait 1s before regenerating
  validoc watch --on-change "make test"  # Run command after regeneration`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds")
	watchCmd.Flags().StringVar(&watchOnChange, "on-change", "", "command to run after regeneration")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadGenerateConfig(args)
	if err != nil {
		return err
	}
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}
	if watchOnChange != "" {
		cfg.Watch.OnChange = watchOnChange
	}

	printVerbose("Watch configuration:")
	printVerbose("  Debounce: %dms", cfg.Watch.Debounce)
	if cfg.Watch.OnChange != "" {
		printVerbose("  On change: %s", cfg.Watch.OnChange)
	}
	printVerbose("  Paths: %s", strings.Join(cfg.Source.Paths, ", "))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(cfg)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		printVerbose("Watching %s", dir)
	}

	printInfo("Watching for changes in: %s", strings.Join(dirs, ", "))
	printInfo("Press Ctrl+C to stop")

	// Initial generation so the output reflects the current routes.
	if err := regenerate(cfg); err != nil {
		printError("Generation failed: %v", err)
	}

	debounce := time.Duration(cfg.Watch.Debounce) * time.Millisecond
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			printInfo("Stopping watch")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event, cfg) {
				continue
			}
			printVerbose("Change detected: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := regenerate(cfg); err != nil {
				printError("Generation failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError("Watch error: %v", err)
		}
	}
}

// watchDirs returns the set of directories to register with the watcher:
// the configured source paths plus every directory currently holding a
// discovered route file.
func watchDirs(cfg *config.Config) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, path := range cfg.Source.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}
		if info.IsDir() {
			add(abs)
		} else {
			add(filepath.Dir(abs))
		}
	}

	files, err := loader.New(cfg.Source).Discover()
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		add(filepath.Dir(file))
	}

	return dirs, nil
}

// relevantEvent reports whether an fsnotify event should trigger a
// regeneration. Only writes, creates, renames and removes of files
// matching the include patterns count.
func relevantEvent(event fsnotify.Event, cfg *config.Config) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	name := filepath.ToSlash(filepath.Base(event.Name))
	for _, pattern := range cfg.Source.Include {
		// Include patterns may carry directory components; match on the
		// basename portion.
		base := pattern
		if idx := strings.LastIndex(pattern, "/"); idx >= 0 {
			base = pattern[idx+1:]
		}
		if matched, _ := filepath.Match(base, name); matched {
			return true
		}
	}
	return false
}

// regenerate builds the document, writes it to the configured output and
// runs the on-change hook if one is set.
func regenerate(cfg *config.Config) error {
	start := time.Now()

	doc, err := generateDocument(cfg)
	if err != nil {
		return err
	}

	writer := openapi.NewWriter()
	if err := writer.WriteFile(doc, cfg.Output, cfg.Format); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	printInfo("Regenerated %s (%d paths, %d definitions) in %s",
		cfg.Output, len(doc.Paths), len(doc.Definitions), time.Since(start).Round(time.Millisecond))

	if cfg.Watch.OnChange != "" {
		printVerbose("Running: %s", cfg.Watch.OnChange)
		hook := exec.Command("sh", "-c", cfg.Watch.OnChange)
		hook.Stdout = os.Stdout
		hook.Stderr = os.Stderr
		if err := hook.Run(); err != nil {
			printError("On-change command failed: %v", err)
		}
	}

	return nil
}
