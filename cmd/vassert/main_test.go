package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("VASSERT_COLOR", "")
	t.Setenv("VASSERT_LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--color", "never"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

const nav = `<nav class="menu">
  <a class="nav active" href="/home" rel="noopener noreferrer" data-test-id="home">Home</a>
  <a class="nav" href="/about">About</a>
</nav>`

func TestMatch(t *testing.T) {
	dir := t.TempDir()
	actual := writeFile(t, dir, "actual.html", `<a href="/" class="b a">Home</a>`)
	same := writeFile(t, dir, "same.html", "<a class=\"a b\"\n   href=\"/\">Home</a>")
	other := writeFile(t, dir, "other.html", `<a href="/">Away</a>`)

	code, out, _ := runCLI(t, "match", actual, same)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "matches")

	code, out, _ = runCLI(t, "match", "--normalize", actual, other)
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, out, "does not match")
	assert.Contains(t, out, "Away")
	assert.Contains(t, out, `actual:   <a class="a b" href="/">Home</a>`)
}

func TestMatch_Usage(t *testing.T) {
	code, _, stderr := runCLI(t, "match", "only-one.html")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "VA030")

	code, _, _ = runCLI(t, "match", "missing-a.html", "missing-b.html")
	assert.Equal(t, exitUsage, code)
}

func TestCheck(t *testing.T) {
	file := writeFile(t, t.TempDir(), "nav.html", nav)

	code, out, _ := runCLI(t, "check", file,
		"--select", "[data-test-id=home]",
		"--tag", "a",
		"--class", "active",
		"--no-class", "hidden",
		"--attr", "href=/home",
		"--rel", "noopener",
		"--child-markup", "Home",
	)
	assert.Equal(t, exitOK, code, out)
	assert.Contains(t, out, "all checks passed")
}

func TestCheck_ReportsEveryFailure(t *testing.T) {
	file := writeFile(t, t.TempDir(), "nav.html", nav)

	code, out, _ := runCLI(t, "check", file,
		"--select", `a[href="/about"]`,
		"--class", "active",
		"--rel", "noopener",
		"--because", "it is the current page",
	)
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, out, `Expected element to have class "active" because it is the current page, but found classes [nav].`)
	assert.Contains(t, out, `Expected element to have attribute "rel" because it is the current page, but found <null>.`)
	assert.Contains(t, out, "2 failures")
}

func TestCheck_WholeFragment(t *testing.T) {
	file := writeFile(t, t.TempDir(), "nav.html", nav)

	code, out, _ := runCLI(t, "check", file, "--tag", "ul")
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, out, `Expected rendered fragment "tag" to be "ul", but found "nav".`)
}

func TestCheck_Errors(t *testing.T) {
	file := writeFile(t, t.TempDir(), "nav.html", nav)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no checks", []string{"check", file}, exitUsage},
		{"bad attr", []string{"check", file, "--attr", "href"}, exitUsage},
		{"bad selector", []string{"check", file, "--select", "a[", "--tag", "a"}, exitUsage},
		{"no match", []string{"check", file, "--select", "table", "--tag", "a"}, exitFailed},
		{"unknown flag", []string{"check", file, "--nope"}, exitUsage},
		{"unknown command", []string{"frobnicate"}, exitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, tt.args...)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "vassert.yaml", "label:\n  element: link\nmarkup:\n  strictClassOrder: true\n")
	file := writeFile(t, dir, "a.html", `<a class="b a"></a>`)

	code, out, _ := runCLI(t, "--config", cfg, "check", file, "--select", "a", "--markup", `<a class="a b"></a>`)
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, out, `Expected link markup`)

	bad := writeFile(t, dir, "bad.yaml", "color: [")
	code, _, stderr := runCLI(t, "--config", bad, "version")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "VA020")
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version", "--short")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, version, strings.TrimSpace(out))

	code, out, _ = runCLI(t, "version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Go version")
}

func TestColorFlag_Invalid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Setenv("VASSERT_COLOR", "")
	code := run([]string{"--color", "sometimes", "version"}, &stdout, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "VA021")
}
