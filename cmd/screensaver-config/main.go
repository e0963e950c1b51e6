package main

import (
	"fmt"
	"os"

	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/selector"
)

func main() {
	runner := &platform.ExecRunner{}

	installDir := selector.InstallDir()
	if _, err := os.Stat(installDir); err != nil {
		fmt.Fprintf(os.Stderr, "screensaver install directory not found: %s\n", installDir)
		os.Exit(1)
	}

	backupPath := selector.BackupPath()
	if err := selector.EnsureBackup(runner, backupPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to cache the default screensaver script: %v\n", err)
		os.Exit(1)
	}

	app := selector.NewApp(installDir, selector.HookPath(), backupPath, runner)
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
