package wizard

import (
	"testing"

	"github.com/mrsinham/fracticon"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/types"
)

func TestToOptions_BasicConversion(t *testing.T) {
	job := &types.JobConfig{
		Input:     "ada@example.org",
		Output:    "ada.png",
		Format:    "png",
		Size:      256,
		GridSize:  96,
		Circular:  true,
		Family:    "tricorn",
		Preset:    "rabbit",
		Palette:   "fire",
		NumColors: 7,
	}

	opts, err := ToOptions(job)
	if err != nil {
		t.Fatalf("ToOptions failed: %v", err)
	}

	if opts.Size != 256 {
		t.Errorf("Expected Size 256, got %d", opts.Size)
	}
	if opts.GridSize != 96 {
		t.Errorf("Expected GridSize 96, got %d", opts.GridSize)
	}
	if !opts.Circular {
		t.Error("Expected Circular true")
	}
	if opts.Family != "tricorn" {
		t.Errorf("Expected Family tricorn, got %s", opts.Family)
	}
	if opts.Preset != "rabbit" {
		t.Errorf("Expected Preset rabbit, got %s", opts.Preset)
	}
	if opts.Palette != "fire" {
		t.Errorf("Expected Palette fire, got %s", opts.Palette)
	}
	if opts.NumColors != 7 {
		t.Errorf("Expected NumColors 7, got %d", opts.NumColors)
	}
	if opts.Constant != nil {
		t.Errorf("Expected nil Constant for empty constant field, got %+v", opts.Constant)
	}
}

func TestToOptions_ParsesConstant(t *testing.T) {
	job := &types.JobConfig{
		Input:    "grace",
		Constant: "-0.8,0.156",
	}

	opts, err := ToOptions(job)
	if err != nil {
		t.Fatalf("ToOptions failed: %v", err)
	}

	if opts.Constant == nil {
		t.Fatal("Expected Constant to be set")
	}
	if opts.Constant.Re != -0.8 || opts.Constant.Im != 0.156 {
		t.Errorf("Expected constant {-0.8, 0.156}, got {%g, %g}", opts.Constant.Re, opts.Constant.Im)
	}
}

func TestToOptions_InvalidConstant(t *testing.T) {
	job := &types.JobConfig{
		Input:    "grace",
		Constant: "not-a-constant",
	}

	if _, err := ToOptions(job); err == nil {
		t.Error("Expected error for invalid constant, got nil")
	}
}

func TestFromOptions_RoundTrip(t *testing.T) {
	opts := &fracticon.Options{
		Size:      512,
		GridSize:  128,
		Circular:  true,
		Family:    "burning-ship",
		Preset:    "dragon",
		Constant:  &fracticon.Constant{Re: 0.285, Im: 0.01},
		Palette:   "ocean",
		NumColors: 6,
	}

	job := FromOptions("linus", "out.svg", "svg", opts)

	if job.Input != "linus" {
		t.Errorf("Expected input linus, got %s", job.Input)
	}
	if job.Output != "out.svg" {
		t.Errorf("Expected output out.svg, got %s", job.Output)
	}
	if job.Format != "svg" {
		t.Errorf("Expected format svg, got %s", job.Format)
	}
	if job.Constant != "0.285,0.01" {
		t.Errorf("Expected constant 0.285,0.01, got %s", job.Constant)
	}

	// Converting back must produce the same options
	back, err := ToOptions(job)
	if err != nil {
		t.Fatalf("ToOptions failed: %v", err)
	}
	if back.Size != opts.Size || back.GridSize != opts.GridSize || back.Circular != opts.Circular {
		t.Errorf("Dimension fields lost in round trip: %+v", back)
	}
	if back.Family != opts.Family || back.Preset != opts.Preset || back.Palette != opts.Palette || back.NumColors != opts.NumColors {
		t.Errorf("Look fields lost in round trip: %+v", back)
	}
	if back.Constant == nil || back.Constant.Re != opts.Constant.Re || back.Constant.Im != opts.Constant.Im {
		t.Errorf("Constant lost in round trip: %+v", back.Constant)
	}
}

func TestFromOptions_NilOptions(t *testing.T) {
	job := FromOptions("bob", "bob.png", "png", nil)

	if job.Input != "bob" || job.Output != "bob.png" || job.Format != "png" {
		t.Errorf("Identity fields not set: %+v", job)
	}
	if job.Size != 0 || job.Family != "" {
		t.Errorf("Expected zero look fields for nil options, got %+v", job)
	}
}

func TestNewWizard_DefaultState(t *testing.T) {
	w := NewWizard(nil)

	if w.job == nil {
		t.Fatal("Expected wizard job to be initialized")
	}

	// Check default values
	if w.job.Output != "avatar.png" {
		t.Errorf("Expected default output avatar.png, got %s", w.job.Output)
	}
	if w.job.Format != "png" {
		t.Errorf("Expected default format png, got %s", w.job.Format)
	}
	if w.job.Size != 128 {
		t.Errorf("Expected default size 128, got %d", w.job.Size)
	}
	if w.job.GridSize != 64 {
		t.Errorf("Expected default grid size 64, got %d", w.job.GridSize)
	}
	if w.job.Family != "julia" {
		t.Errorf("Expected default family julia, got %s", w.job.Family)
	}
	if w.job.Palette != "random" {
		t.Errorf("Expected default palette random, got %s", w.job.Palette)
	}
	if w.job.NumColors != 5 {
		t.Errorf("Expected default num colors 5, got %d", w.job.NumColors)
	}

	// Check initial phase
	if w.phase != PhaseSetup {
		t.Errorf("Expected initial phase PhaseSetup, got %v", w.phase)
	}
}

func TestNewWizard_WithExistingJob(t *testing.T) {
	existing := &types.JobConfig{
		Input:     "carol",
		Output:    "/custom/carol.png",
		Format:    "png",
		Size:      64,
		GridSize:  32,
		Family:    "mandelbrot",
		Palette:   "pastel",
		NumColors: 4,
	}

	w := NewWizard(existing)

	if w.job != existing {
		t.Error("Expected wizard to use provided job")
	}
	if w.job.Input != "carol" {
		t.Errorf("Expected input carol, got %s", w.job.Input)
	}
	if w.job.Size != 64 {
		t.Errorf("Expected size 64, got %d", w.job.Size)
	}
}

func TestDefaultJob_ConvertsCleanly(t *testing.T) {
	job := DefaultJob()
	job.Input = "default-user"

	opts, err := ToOptions(job)
	if err != nil {
		t.Fatalf("ToOptions failed on defaults: %v", err)
	}

	// The defaults must be renderable as-is
	if _, err := fracticon.Generate(job.Input, opts); err != nil {
		t.Fatalf("Generate failed on default job: %v", err)
	}
}
