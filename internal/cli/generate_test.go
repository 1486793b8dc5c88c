package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hackebrot/mdreport/internal/errors"
	"github.com/hackebrot/mdreport/internal/output"
)

// writeFile writes a temp file and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCmdGeneratePytestLog(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "pytest.log",
		"== 1 failed, 3 passed, 1 skipped, 1 xfailed, 1 xpassed, 1 error in 0.05s ==\n")
	reportPath := filepath.Join(dir, "report.md")

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "pytest", input},
		&GlobalOptions{Quiet: true},
	)
	// Failures were collected, so the exit code mirrors the test run.
	if code != errors.ExitRuntimeError {
		t.Fatalf("cmdGenerate() = %d, want %d", code, errors.ExitRuntimeError)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	doc := string(data)

	for _, want := range []string{
		"# Test Report\n",
		"[pytest-md]: https://github.com/hackebrot/pytest-md\n",
		"## Summary\n",
		"8 tests ran in 0.05 seconds\n",
		"- 1 failed\n",
		"- 3 passed\n",
		"- 1 skipped\n",
		"- 1 xfailed\n",
		"- 1 xpassed\n",
		"- 1 error\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("report missing %q:\n%s", want, doc)
		}
	}
}

func TestCmdGenerateAllPassing(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "pytest.log", "======= 3 passed in 0.10s =======\n")
	reportPath := filepath.Join(dir, "report.md")

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "pytest", input},
		&GlobalOptions{Quiet: true},
	)
	if code != errors.ExitSuccess {
		t.Fatalf("cmdGenerate() = %d, want %d", code, errors.ExitSuccess)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), "3 tests ran in 0.10 seconds\n") {
		t.Errorf("summary sentence missing:\n%s", data)
	}
}

// TestCmdGenerateZeroTests checks that an empty but well-formed run
// still produces the report and exits 0.
func TestCmdGenerateZeroTests(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "pytest.log", "======= no tests ran in 0.01s =======\n")
	reportPath := filepath.Join(dir, "report.md")

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "pytest", input},
		&GlobalOptions{Quiet: true},
	)
	if code != errors.ExitSuccess {
		t.Fatalf("cmdGenerate() = %d, want %d", code, errors.ExitSuccess)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	doc := string(data)
	if !strings.Contains(doc, "0 tests ran in 0.01 seconds\n") {
		t.Errorf("zero-test summary sentence missing:\n%s", doc)
	}
	if strings.Contains(doc, "- 0 ") {
		t.Errorf("zero-count bullet rendered:\n%s", doc)
	}
}

func TestCmdGenerateEmoji(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "pytest.log", "======= 2 passed in 0.10s =======\n")
	reportPath := filepath.Join(dir, "report.md")

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "pytest", "--emoji", input},
		&GlobalOptions{Quiet: true},
	)
	if code != errors.ExitSuccess {
		t.Fatalf("cmdGenerate() = %d, want %d", code, errors.ExitSuccess)
	}

	data, _ := os.ReadFile(reportPath)
	if !strings.Contains(string(data), "- 2 passed 😃\n") {
		t.Errorf("default emoji decoration missing:\n%s", data)
	}
}

// TestCmdGenerateEmojiWithSymbolsWarns checks that combining --emoji
// with --symbols warns on stderr and the custom table wins.
func TestCmdGenerateEmojiWithSymbolsWarns(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "pytest.log", "======= 1 passed in 0.10s =======\n")
	symbolsPath := writeFile(t, dir, "symbols.yml", "passed: \"🦊\"\n")
	reportPath := filepath.Join(dir, "report.md")

	stderr := &bytes.Buffer{}
	saved := out
	out = output.NewWithWriters(&bytes.Buffer{}, stderr, false)
	defer func() { out = saved }()

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "pytest", "--emoji", "--symbols", symbolsPath, input},
		&GlobalOptions{Quiet: true},
	)
	if code != errors.ExitSuccess {
		t.Fatalf("cmdGenerate() = %d, want %d", code, errors.ExitSuccess)
	}

	if !strings.Contains(stderr.String(), "--emoji is ignored") {
		t.Errorf("warning missing from stderr: %q", stderr.String())
	}

	data, _ := os.ReadFile(reportPath)
	if !strings.Contains(string(data), "- 1 passed 🦊\n") {
		t.Errorf("custom symbol table did not win:\n%s", data)
	}
}

func TestCmdGenerateCustomSymbols(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "pytest.log", "======= 1 passed in 1.00s =======\n")
	symbolsPath := writeFile(t, dir, "symbols.yml", "passed: \"🦊\"\nduration: \"⏰\"\n")
	reportPath := filepath.Join(dir, "report.md")

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "pytest", "--symbols", symbolsPath, input},
		&GlobalOptions{Quiet: true},
	)
	if code != errors.ExitSuccess {
		t.Fatalf("cmdGenerate() = %d, want %d", code, errors.ExitSuccess)
	}

	data, _ := os.ReadFile(reportPath)
	doc := string(data)
	if !strings.Contains(doc, "1 tests ran in 1.00 seconds ⏰\n") {
		t.Errorf("duration decoration missing:\n%s", doc)
	}
	if !strings.Contains(doc, "- 1 passed 🦊\n") {
		t.Errorf("passed decoration missing:\n%s", doc)
	}
}

func TestCmdGenerateVerboseResults(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "go.log", strings.Join([]string{
		"=== RUN   TestOkay",
		"--- PASS: TestOkay (0.01s)",
		"=== RUN   TestBroken",
		"    broken_test.go:7: want 2, got 3",
		"--- FAIL: TestBroken (0.02s)",
		"FAIL\texample.com/pkg\t0.10s",
		"",
	}, "\n"))
	reportPath := filepath.Join(dir, "report.md")

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "go", input},
		&GlobalOptions{Quiet: true, Verbose: true},
	)
	if code != errors.ExitRuntimeError {
		t.Fatalf("cmdGenerate() = %d, want %d", code, errors.ExitRuntimeError)
	}

	data, _ := os.ReadFile(reportPath)
	doc := string(data)
	if !strings.Contains(doc, "## 1 failed\n") || !strings.Contains(doc, "## 1 passed\n") {
		t.Errorf("results sections missing:\n%s", doc)
	}
	if !strings.Contains(doc, "### example.com/pkg\n") {
		t.Errorf("location heading missing:\n%s", doc)
	}
	if !strings.Contains(doc, "0.02s `TestBroken`\n") {
		t.Errorf("failed test line missing:\n%s", doc)
	}
	if !strings.Contains(doc, "broken_test.go:7: want 2, got 3") {
		t.Errorf("captured failure output missing:\n%s", doc)
	}
}

func TestCmdGenerateUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.md")

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "cobol"},
		&GlobalOptions{Quiet: true},
	)
	if code != errors.ExitConfigError {
		t.Errorf("cmdGenerate() = %d, want %d", code, errors.ExitConfigError)
	}
	if _, err := os.Stat(reportPath); !os.IsNotExist(err) {
		t.Error("report written despite unsupported format")
	}
}

func TestCmdGenerateNoResults(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "noise.log", "nothing resembling test output\n")
	reportPath := filepath.Join(dir, "report.md")

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "pytest", input},
		&GlobalOptions{Quiet: true},
	)
	if code != errors.ExitRuntimeError {
		t.Errorf("cmdGenerate() = %d, want %d", code, errors.ExitRuntimeError)
	}
	if _, err := os.Stat(reportPath); !os.IsNotExist(err) {
		t.Error("report written despite unparseable input")
	}
}

func TestCmdGenerateBadSymbolsFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "pytest.log", "======= 1 passed in 0.10s =======\n")
	symbolsPath := writeFile(t, dir, "symbols.yml", "flaky: \"🤷\"\n")
	reportPath := filepath.Join(dir, "report.md")

	code := cmdGenerate(
		[]string{"--md", reportPath, "--format", "pytest", "--symbols", symbolsPath, input},
		&GlobalOptions{Quiet: true},
	)
	if code != errors.ExitConfigError {
		t.Errorf("cmdGenerate() = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestCmdGenerateMissingMd(t *testing.T) {
	code := cmdGenerate([]string{"--format", "pytest"}, &GlobalOptions{Quiet: true})
	if code != errors.ExitConfigError {
		t.Errorf("cmdGenerate() = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestResolveReportPath(t *testing.T) {
	got, err := resolveReportPath("report.md")
	if err != nil {
		t.Fatalf("resolveReportPath() error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("resolveReportPath() = %q, want absolute path", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err = resolveReportPath("~/report.md")
	if err != nil {
		t.Fatalf("resolveReportPath() error: %v", err)
	}
	if got != filepath.Join(home, "report.md") {
		t.Errorf("resolveReportPath(~/report.md) = %q, want under %q", got, home)
	}
}
