package e2e

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// binaryPath holds the path to the compiled binary (set once in TestMain)
var binaryPath string

// testContext holds state for a single scenario
type testContext struct {
	tmpDir   string
	exitCode int
	output   string
}

// buildBinary compiles the fracticon binary once
func buildBinary() (string, error) {
	tmpFile, err := os.CreateTemp("", "fracticon-test-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpFile.Close()

	// Get the directory of this test file to find the project root
	_, thisFile, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")

	cmd := exec.Command("go", "build", "-o", tmpFile.Name(), "./cmd/fracticon")
	cmd.Dir = projectRoot
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build failed: %w\n%s", err, stderr.String())
	}

	return tmpFile.Name(), nil
}

// TestMain compiles the binary once before running all tests
func TestMain(m *testing.M) {
	var err error
	binaryPath, err = buildBinary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}
	defer os.Remove(binaryPath)

	code := m.Run()
	os.Exit(code)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	tc := &testContext{}

	// Setup: create temp directory before each scenario
	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tmpDir, err := os.MkdirTemp("", "fracticon-e2e-*")
		if err != nil {
			return ctx, err
		}
		tc.tmpDir = tmpDir
		return ctx, nil
	})

	// Teardown: cleanup temp directory after each scenario
	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc.tmpDir != "" {
			os.RemoveAll(tc.tmpDir)
		}
		return ctx, nil
	})

	// Step definitions
	sc.Step(`^fracticon is built$`, tc.fracticonIsBuilt)
	sc.Step(`^I run fracticon with "([^"]*)"$`, tc.iRunFracticonWith)
	sc.Step(`^the exit code should be (\d+)$`, tc.theExitCodeShouldBe)
	sc.Step(`^the output should contain "([^"]*)"$`, tc.theOutputShouldContain)
	sc.Step(`^"([^"]*)" should exist$`, tc.shouldExist)
	sc.Step(`^"([^"]*)" should be a valid PNG$`, tc.shouldBeValidPNG)
	sc.Step(`^"([^"]*)" should be a (\d+)x(\d+) PNG$`, tc.shouldBePNGWithSize)
	sc.Step(`^"([^"]*)" should be an SVG document$`, tc.shouldBeSVG)
	sc.Step(`^"([^"]*)" and "([^"]*)" should be identical$`, tc.shouldBeIdentical)
	sc.Step(`^"([^"]*)" and "([^"]*)" should differ$`, tc.shouldDiffer)
}

func (tc *testContext) fracticonIsBuilt() error {
	if binaryPath == "" {
		return fmt.Errorf("binary not built")
	}
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		return fmt.Errorf("binary does not exist at %s", binaryPath)
	}
	return nil
}

func (tc *testContext) iRunFracticonWith(args string) error {
	// Replace {tmpdir} placeholder with actual temp directory
	args = strings.ReplaceAll(args, "{tmpdir}", tc.tmpDir)

	// Split args respecting quotes
	argList := splitArgs(args)

	cmd := exec.Command(binaryPath, argList...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	tc.output = output.String()

	if exitErr, ok := err.(*exec.ExitError); ok {
		tc.exitCode = exitErr.ExitCode()
	} else if err != nil {
		return fmt.Errorf("failed to run command: %w", err)
	} else {
		tc.exitCode = 0
	}

	return nil
}

func (tc *testContext) theExitCodeShouldBe(expected int) error {
	if tc.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nOutput:\n%s", expected, tc.exitCode, tc.output)
	}
	return nil
}

func (tc *testContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(tc.output, expected) {
		return fmt.Errorf("output does not contain %q\nOutput:\n%s", expected, tc.output)
	}
	return nil
}

func (tc *testContext) shouldExist(path string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	return nil
}

func (tc *testContext) shouldBeValidPNG(path string) error {
	_, err := tc.decodePNG(path)
	return err
}

func (tc *testContext) shouldBePNGWithSize(path string, width, height int) error {
	img, err := tc.decodePNG(path)
	if err != nil {
		return err
	}
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return fmt.Errorf("expected %dx%d, got %dx%d", width, height, b.Dx(), b.Dy())
	}
	return nil
}

// decodePNG parses a generated file with the standard library decoder,
// which verifies chunk CRCs and the zlib checksum along the way.
func (tc *testContext) decodePNG(path string) (image.Image, error) {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s as PNG: %w", path, err)
	}
	return img, nil
}

func (tc *testContext) shouldBeSVG(path string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		return fmt.Errorf("%s does not start with an <svg> element", path)
	}
	if !strings.Contains(string(data), "</svg>") {
		return fmt.Errorf("%s has no closing </svg> tag", path)
	}
	return nil
}

func (tc *testContext) shouldBeIdentical(pathA, pathB string) error {
	a, b, err := tc.readPair(pathA, pathB)
	if err != nil {
		return err
	}
	if !bytes.Equal(a, b) {
		return fmt.Errorf("%s and %s differ (%d vs %d bytes)", pathA, pathB, len(a), len(b))
	}
	return nil
}

func (tc *testContext) shouldDiffer(pathA, pathB string) error {
	a, b, err := tc.readPair(pathA, pathB)
	if err != nil {
		return err
	}
	if bytes.Equal(a, b) {
		return fmt.Errorf("%s and %s are identical, expected different content", pathA, pathB)
	}
	return nil
}

func (tc *testContext) readPair(pathA, pathB string) ([]byte, []byte, error) {
	pathA = strings.ReplaceAll(pathA, "{tmpdir}", tc.tmpDir)
	pathB = strings.ReplaceAll(pathB, "{tmpdir}", tc.tmpDir)

	a, err := os.ReadFile(pathA)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", pathA, err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", pathB, err)
	}
	return a, b, nil
}

// splitArgs splits a command line string into arguments
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
