package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"grokcli/internal/config"
)

// ensureConfig makes sure the config file exists before any mode runs. On a
// first run it asks permission, collects the three values, and writes the
// file with elevated privileges (the directory is root-owned). It returns
// false when the process should stop — setup declined or the write failed —
// with the explanation already printed; per the CLI contract that is a
// clean exit, not an error.
func ensureConfig(in io.Reader, out io.Writer) bool {
	if _, err := os.Stat(config.Path); err == nil {
		return true
	}

	r := bufio.NewReader(in)
	fmt.Fprintf(out, "No config found at %s. Create it now? [y/N] ", config.Path)
	if !confirmed(r) {
		fmt.Fprintln(out, "grokcli needs a config file to run; nothing written.")
		return false
	}

	cfg := askValues(r, out)
	if err := writePrivileged(config.Encode(cfg)); err != nil {
		fmt.Fprintf(out, "could not write %s: %v\n", config.Path, err)
		return false
	}
	fmt.Fprintf(out, "Wrote %s.\n", config.Path)
	return true
}

// askValues prompts for the config fields. The image endpoint may be left
// blank to disable image mode.
func askValues(r *bufio.Reader, out io.Writer) config.Config {
	return config.Config{
		Endpoint:      ask(r, out, "Chat completion endpoint URL: "),
		Key:           ask(r, out, "API key: "),
		ImageEndpoint: ask(r, out, "Image generation endpoint URL (optional): "),
	}
}

func ask(r *bufio.Reader, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

// writePrivileged creates the config directory and file via sudo, since the
// fixed path lives under /etc. sudo's password prompt talks to the tty
// directly, so feeding the file content on stdin is safe.
func writePrivileged(data []byte) error {
	mkdir := exec.Command("sudo", "mkdir", "-p", filepath.Dir(config.Path))
	mkdir.Stderr = os.Stderr
	if err := mkdir.Run(); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(config.Path), err)
	}

	tee := exec.Command("sudo", "tee", config.Path)
	tee.Stdin = bytes.NewReader(data)
	tee.Stdout = io.Discard
	tee.Stderr = os.Stderr
	if err := tee.Run(); err != nil {
		return fmt.Errorf("write %s: %w", config.Path, err)
	}
	return nil
}
