package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("biondi %s failed: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

const ringerScript = `events:
  - click: [0, 0]
  - click: [0, 10]
  - tool: length
  - click: [0, 0]
  - click: [100, 0]
  - ok: true
`

func TestMeasureAndShow(t *testing.T) {
	dir := t.TempDir()
	base := []string{"--config", filepath.Join(dir, "biondi.toml"), "--db", filepath.Join(dir, "bodies.db")}
	script := filepath.Join(dir, "ringer.yaml")
	if err := os.WriteFile(script, []byte(ringerScript), 0o644); err != nil {
		t.Fatal(err)
	}

	execute(t, append(base, "init")...)
	execute(t, append(base, "add", "--time", "100", "--grid", "D4", "--x", "3", "--y", "4")...)

	out := execute(t, append(base, "measure", "ringer", "--record", "100", "--script", script, "-o", "yaml")...)
	if !strings.Contains(out, "kind: ringer") || !strings.Contains(out, "dprong1: 10\n") {
		t.Errorf("measure output failed:\n%s", out)
	}

	out = execute(t, append(base, "show", "100", "-o", "json")...)
	var r report
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("show output is not JSON: %v\n%s", err, out)
	}
	if r.GridID != "D4" || r.Log == nil || math.Abs(*r.Log-1) > 1e-12 {
		t.Errorf("show failed: got %+v", r)
	}
	if r.DProng1 == nil || math.Abs(*r.DProng1-10) > 1e-10 {
		t.Errorf("show failed: expected distance 10 in dprong1, got %v", r.DProng1)
	}

	out = execute(t, append(base, "show", "100", "-o", "text")...)
	if !strings.Contains(out, "Distance: 10.0000 px") {
		t.Errorf("text output failed:\n%s", out)
	}
}
