package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

const testAtlas = `{
  "frames": {
    "walk0001": {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}, "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16}, "sourceSize": {"w": 16, "h": 16}},
    "walk0002": {"frame": {"x": 16, "y": 0, "w": 16, "h": 16}, "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16}, "sourceSize": {"w": 16, "h": 16}},
    "walk0003": {"frame": {"x": 32, "y": 0, "w": 16, "h": 16}, "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16}, "sourceSize": {"w": 16, "h": 16}}
  }
}`

const testClip = `{"labels": {"attack": 2}, "frames": [{"name": "walk#", "min": 1, "max": 3}]}`

func writeFixtures(t *testing.T) (atlasPath, clipPath string) {
	t.Helper()
	dir := t.TempDir()
	atlasPath = filepath.Join(dir, "atlas.json")
	clipPath = filepath.Join(dir, "walk.json")
	if err := os.WriteFile(atlasPath, []byte(testAtlas), 0644); err != nil {
		t.Fatalf("write atlas: %v", err)
	}
	if err := os.WriteFile(clipPath, []byte(testClip), 0644); err != nil {
		t.Fatalf("write clip: %v", err)
	}
	return atlasPath, clipPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	r := NewRunner(RunnerOpts{Logger: log.New(io.Discard), Output: &out})
	app := &cli.Command{Name: "clipinspect", Commands: r.register()}
	err := app.Run(context.Background(), append([]string{"clipinspect"}, args...))
	return out.String(), err
}

func TestRunnerLabels(t *testing.T) {
	atlasPath, clipPath := writeFixtures(t)
	out, err := run(t, "labels", "--atlas", atlasPath, "--clip", clipPath)
	if err != nil {
		t.Fatalf("labels: %v", err)
	}
	if !strings.Contains(out, "walk: 3 frames") {
		t.Errorf("missing frame count in %q", out)
	}
	if !strings.Contains(out, "attack") {
		t.Errorf("missing label in %q", out)
	}
}

func TestRunnerPlay(t *testing.T) {
	atlasPath, clipPath := writeFixtures(t)
	out, err := run(t, "play", "--atlas", atlasPath, "--clip", clipPath, "--ticks", "4")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	for _, want := range []string{
		"tick    1  frame 1",
		"tick    2  frame 2",
		"tick    2  label attack",
		"tick    3  frame 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunnerPlayStartLabel(t *testing.T) {
	atlasPath, clipPath := writeFixtures(t)
	configPath := filepath.Join(t.TempDir(), "player.toml")
	conf := "[playback]\nloop = false\nticks = 3\nstart = \"attack\"\n"
	if err := os.WriteFile(configPath, []byte(conf), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := run(t, "play", "--atlas", atlasPath, "--clip", clipPath, "--config", configPath)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if strings.Contains(out, "frame") {
		t.Errorf("clip held on its last frame should print no frame changes:\n%s", out)
	}
}

func TestRunnerPlayMissingAtlas(t *testing.T) {
	_, clipPath := writeFixtures(t)
	_, err := run(t, "play", "--atlas", filepath.Join(t.TempDir(), "none.json"), "--clip", clipPath)
	if err == nil {
		t.Error("expected error for missing atlas")
	}
}

func TestRunnerPrintConfig(t *testing.T) {
	out, err := run(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "[playback]") {
		t.Errorf("unexpected config output %q", out)
	}
}
