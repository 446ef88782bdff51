package screens

import (
	"strings"
	"testing"

	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/types"
)

func TestGenerateCLICommand_DefaultsOmitted(t *testing.T) {
	job := &types.JobConfig{
		Input:     "ada",
		Output:    "avatar.png",
		Format:    "png",
		Size:      128,
		GridSize:  64,
		Family:    "julia",
		Palette:   "random",
		NumColors: 5,
	}

	s := NewSummaryScreen(job)
	cmd := s.generateCLICommand()

	want := `fracticon -input "ada"`
	if cmd != want {
		t.Errorf("Expected %q, got %q", want, cmd)
	}
}

func TestGenerateCLICommand_AllOverrides(t *testing.T) {
	job := &types.JobConfig{
		Input:     "grace hopper",
		Output:    "grace.svg",
		Format:    "svg",
		Size:      256,
		GridSize:  96,
		Circular:  true,
		Family:    "tricorn",
		Preset:    "dragon",
		Constant:  "-0.8,0.156",
		Palette:   "fire",
		NumColors: 7,
	}

	s := NewSummaryScreen(job)
	cmd := s.generateCLICommand()

	for _, part := range []string{
		`-input "grace hopper"`,
		"-o grace.svg",
		"-svg",
		"-size 256",
		"-grid 96",
		"-family tricorn",
		"-preset dragon",
		"-constant -0.8,0.156",
		"-palette fire",
		"-colors 7",
		"-circular",
	} {
		if !strings.Contains(cmd, part) {
			t.Errorf("Expected command to contain %q, got %q", part, cmd)
		}
	}
}

func TestBuildPreview_Deterministic(t *testing.T) {
	job := &types.JobConfig{
		Input:     "preview-user",
		Family:    "julia",
		Palette:   "random",
		NumColors: 5,
	}

	first := buildPreview(job)
	second := buildPreview(job)

	if first != second {
		t.Error("Expected identical previews for the same job")
	}

	lines := strings.Split(first, "\n")
	if len(lines) != previewSize {
		t.Errorf("Expected %d preview rows, got %d", previewSize, len(lines))
	}
}

func TestBuildPreview_InvalidConstant(t *testing.T) {
	job := &types.JobConfig{
		Input:    "someone",
		Constant: "broken",
	}

	preview := buildPreview(job)
	if !strings.Contains(preview, "invalid constant") {
		t.Errorf("Expected constant error in preview, got %q", preview)
	}
}
