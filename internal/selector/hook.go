package selector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/saver"
)

// officialHookURL is where the stock omarchy screensaver script lives; it
// is cached locally before the first install so R can restore it.
const officialHookURL = "https://raw.githubusercontent.com/basecamp/omarchy/refs/heads/master/bin/omarchy-cmd-screensaver"

// HookScript renders the monitor script that the compositor runs. The
// script hides the cursor, launches the effect binary in the background,
// and polls until the effect dies (or, on a direct launch, until its
// window loses focus), restoring the cursor on every exit path.
func HookScript(binaryPath, options string) string {
	launch := binaryPath
	if options != "" {
		launch += " " + options
	}

	var b strings.Builder
	b.WriteString("#!/bin/bash\n\n")
	b.WriteString("LAUNCH_MODE=0\n")
	b.WriteString("if [[ \"$1\" == \"launch\" ]]; then\n")
	b.WriteString("  LAUNCH_MODE=1\n")
	b.WriteString("fi\n\n")
	b.WriteString("# Hide the cursor while the screensaver runs\n")
	b.WriteString("hyprctl keyword cursor:invisible true &>/dev/null\n\n")
	fmt.Fprintf(&b, "SDL_VIDEODRIVER=wayland %s >/dev/null 2>&1 &\n", launch)
	b.WriteString("SAVER_PID=$!\n\n")
	b.WriteString("screensaver_in_focus() {\n")
	b.WriteString("  hyprctl activewindow -j | jq -e '.class == \"Screensaver\"' >/dev/null 2>&1\n")
	b.WriteString("}\n\n")
	b.WriteString("exit_screensaver() {\n")
	b.WriteString("  hyprctl keyword cursor:invisible false 2>/dev/null\n")
	b.WriteString("  pkill -x tte 2>/dev/null\n")
	b.WriteString("  pkill -f \"alacritty --class Screensaver\" 2>/dev/null\n")
	b.WriteString("  exit 0\n")
	b.WriteString("}\n\n")
	b.WriteString("trap exit_screensaver INT TERM HUP QUIT\n\n")
	b.WriteString("# Monitor: a dead saver always exits; focus only matters on direct launch\n")
	b.WriteString("while true; do\n")
	b.WriteString("  if [[ $LAUNCH_MODE -eq 1 ]]; then\n")
	b.WriteString("    if ! kill -0 $SAVER_PID 2>/dev/null; then\n")
	b.WriteString("      exit_screensaver\n")
	b.WriteString("    fi\n")
	b.WriteString("  else\n")
	b.WriteString("    if ! screensaver_in_focus || ! kill -0 $SAVER_PID 2>/dev/null; then\n")
	b.WriteString("      exit_screensaver\n")
	b.WriteString("    fi\n")
	b.WriteString("  fi\n")
	b.WriteString("  sleep 1\n")
	b.WriteString("done\n")
	return b.String()
}

// WriteHook installs the hook script for a catalog entry at hookPath,
// atomically and executable.
func WriteHook(hookPath, binaryPath, options string) error {
	return writeFileAtomic(hookPath, []byte(HookScript(binaryPath, options)))
}

// EnsureBackup downloads the official hook script into backupPath when no
// cached copy exists yet.
func EnsureBackup(runner platform.Runner, backupPath string) error {
	if _, err := os.Stat(backupPath); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(backupPath), 0o755); err != nil {
		return err
	}
	if err := runner.Run("curl", "-s", officialHookURL, "-o", backupPath); err != nil {
		return err
	}
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup download produced no file: %w", saver.ErrSubprocess)
	}
	return nil
}

// RestoreDefault copies the cached official script over the installed hook
// byte-for-byte.
func RestoreDefault(backupPath, hookPath string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return err
	}
	return writeFileAtomic(hookPath, data)
}

// writeFileAtomic writes an executable file through a temp name and rename
// so a crashed write never leaves a truncated hook installed.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o755); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
