/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsonmap-lang/jsonmap/internal/jmlog"
)

func mustTestLogger(t *testing.T) *jmlog.LevelLogger {
	t.Helper()
	logger, err := jmlog.New(io.Discard, "error")
	if err != nil {
		t.Fatalf("could not build test logger: %v", err)
	}
	return logger
}

func TestDecodeJSON(t *testing.T) {
	got, err := decode([]byte(`{"a": 1}`), ".json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := got.(map[string]interface{})
	if !ok || m["a"] != float64(1) {
		t.Errorf("got %#v, want map[a:1]", got)
	}
}

func TestDecodeYAML(t *testing.T) {
	got, err := decode([]byte("a: 1\n"), ".yml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := got.(map[string]interface{})
	if !ok || m["a"] != float64(1) {
		t.Errorf("got %#v, want map[a:1]", got)
	}
}

func TestRunMissingProgramFile(t *testing.T) {
	err := run(nil, 0, mustTestLogger(t))
	if err == nil {
		t.Fatal("expected an error for a missing program-file argument")
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()

	programPath := filepath.Join(dir, "program.jsonmap")
	if err := os.WriteFile(programPath, []byte(`foo = &bar;`), 0644); err != nil {
		t.Fatalf("could not write program file: %v", err)
	}

	dataPath := filepath.Join(dir, "data.json")
	if err := os.WriteFile(dataPath, []byte(`{"bar": "hello"}`), 0644); err != nil {
		t.Fatalf("could not write data file: %v", err)
	}

	if err := run([]string{programPath, dataPath}, 0, mustTestLogger(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunRejectsMissingDataFile(t *testing.T) {
	dir := t.TempDir()
	programPath := filepath.Join(dir, "program.jsonmap")
	if err := os.WriteFile(programPath, []byte(`foo = &bar;`), 0644); err != nil {
		t.Fatalf("could not write program file: %v", err)
	}

	err := run([]string{programPath, filepath.Join(dir, "missing.json")}, 0, mustTestLogger(t))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("got %v, want a does-not-exist error", err)
	}
}
