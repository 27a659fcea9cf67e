package rjson

import "testing"

func TestEscapePathSegment(t *testing.T) {
	tests := []struct {
		name string
		seg  string
		want string
	}{
		{name: "Plain Segment", seg: "name", want: "name"},
		{name: "Empty Segment", seg: "", want: ""},
		{name: "Dotted Key", seg: "foo.bar", want: `foo\.bar`},
		{name: "Wildcards", seg: "*key?", want: `\*key\?`},
		{name: "Modifier Prefix", seg: "@pretty", want: `\@pretty`},
		{name: "Backslash", seg: `a\b`, want: `a\\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapePathSegment(tt.seg); got != tt.want {
				t.Errorf("EscapePathSegment(%q) = %q, want %q", tt.seg, got, tt.want)
			}
		})
	}
}

func TestBuildEscapedPath(t *testing.T) {
	got := BuildEscapedPath("config", "foo.bar", "*key")
	want := `config.foo\.bar.\*key`
	if got != want {
		t.Errorf("BuildEscapedPath() = %q, want %q", got, want)
	}

	if got := BuildEscapedPath(); got != "" {
		t.Errorf("BuildEscapedPath() = %q, want empty", got)
	}
}

func TestEscapedPathRoundTrip(t *testing.T) {
	// Escaped segments must address keys the damaged-document helpers see.
	data := []byte(`{"foo.bar": {"inner": 42},`)
	path := BuildEscapedPath("foo.bar", "inner")
	if got := Get(data, path).Int(); got != 42 {
		t.Errorf("Get(%q) = %d, want 42", path, got)
	}
}
