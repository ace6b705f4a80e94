package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "dom error",
			code:    "VA001",
			wantMsg: "No root element of component found.",
			wantCat: CategoryDOM,
		},
		{
			name:    "markup error",
			code:    "VA010",
			wantMsg: "Markup could not be parsed",
			wantCat: CategoryMarkup,
		},
		{
			name:    "config error",
			code:    "VA020",
			wantMsg: "Invalid vassert.yaml",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "VA999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "page.html")
	if err.Message != `file "page.html" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "page.html" not found`)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestVassertError_Error(t *testing.T) {
	err := New("VA002")
	if got, want := err.Error(), "VA002: No element matched selector"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err.WithDetail(`selector "a.nav"`)
	if got, want := err.Error(), `VA002: No element matched selector: selector "a.nav"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &VassertError{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestVassertError_Wrap(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := New("VA001").Wrap(sentinel)

	if err.Unwrap() != sentinel {
		t.Error("Unwrap() should return wrapped error")
	}
	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "VA001") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	ve := New("VA001")
	if FromError(ve, "VA002") != ve {
		t.Error("FromError should return VassertError as-is")
	}

	std := stderrors.New("boom")
	wrapped := FromError(std, "VA010")
	if wrapped.Wrapped != std {
		t.Error("standard error should be wrapped")
	}
	if wrapped.Code != "VA010" {
		t.Errorf("Code = %q, want VA010", wrapped.Code)
	}
}

func TestCode(t *testing.T) {
	err := New("VA003").Wrap(stderrors.New("inner"))
	if got := Code(err); got != "VA003" {
		t.Errorf("Code() = %q, want VA003", got)
	}
	if got := Code(stderrors.New("plain")); got != "" {
		t.Errorf("Code() = %q, want empty", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("VA003").
		WithDetail(`selector "a[" is not valid CSS`).
		WithSuggestion("Quote attribute values").
		Wrap(stderrors.New("expected identifier"))

	out := err.Format()
	for _, want := range []string{
		"ERROR VA003: Invalid selector",
		`selector "a[" is not valid CSS`,
		"Cause: expected identifier",
		"Hint: Quote attribute values",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormat_FallsBackToRegistryDetail(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("VA001").Format()
	if !strings.Contains(out, "only text, comments or nothing") {
		t.Errorf("Format() should include registry detail, got:\n%s", out)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("VA021").WithDetail(`color must be auto, always or never`)
	want := "VA021: Invalid configuration value (color must be auto, always or never)"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, stderrors.New("plain failure"))
	if !strings.Contains(buf.String(), "ERROR: plain failure") {
		t.Errorf("Fprint() = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, New("VA030"))
	if !strings.Contains(buf.String(), "ERROR VA030: Invalid command usage") {
		t.Errorf("Fprint() = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 9)
	for _, line := range lines {
		if len(line) > 9 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if got := strings.Join(lines, " "); got != "one two three four five six" {
		t.Errorf("wrapText lost words: %q", got)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}

func TestRegistryCodesAreCategorized(t *testing.T) {
	for _, code := range Codes() {
		tmpl, ok := Lookup(code)
		if !ok {
			t.Fatalf("Lookup(%q) failed", code)
		}
		if tmpl.Category == "" || tmpl.Message == "" {
			t.Errorf("code %s has incomplete template: %+v", code, tmpl)
		}
	}
}
