package rjson

// Options controls the formatting the repair pass emits. The zero value is
// the minify configuration: no indentation, no newlines, no separator after
// colons.
type Options struct {
	Indent    string // inserted once per nesting level after each newline
	Newline   string // inserted after openers, closers, and commas
	Separator string // inserted after every ':'
}

// PrettyOptions returns the default human-readable configuration:
// two-space indentation, LF newlines, one space after colons.
func PrettyOptions() *Options {
	return &Options{Indent: "  ", Newline: "\n", Separator: " "}
}

// MinifyOptions returns the configuration that produces the smallest output.
func MinifyOptions() *Options {
	return &Options{}
}

// Fix repairs data and pretty-prints the result. The output is always
// structurally balanced JSON, whatever the input looked like; for input that
// is already well-formed and pretty-printed it is returned unchanged.
func Fix(data []byte) []byte {
	return FixWithOptions(data, nil)
}

// FixWithOptions repairs data using the given formatting configuration.
// A nil opts means PrettyOptions.
func FixWithOptions(data []byte, opts *Options) []byte {
	if opts == nil {
		opts = PrettyOptions()
	}
	return newFixer(data, *opts).run()
}

// Minify repairs data and strips all inter-token whitespace in the same pass.
func Minify(data []byte) []byte {
	return FixWithOptions(data, MinifyOptions())
}

// FixString is Fix for string inputs.
func FixString(s string) string {
	return string(Fix([]byte(s)))
}

// MinifyString is Minify for string inputs.
func MinifyString(s string) string {
	return string(Minify([]byte(s)))
}

//------------------------------------------------------------------------------
// OUTPUT HELPERS
//------------------------------------------------------------------------------

// indentCacheDepth is how many nesting levels of indentation are precomputed
// per call. Deeper nesting falls back to appending level by level; the output
// is identical either way.
const indentCacheDepth = 32

func buildIndentCache(indent string) []byte {
	cache := make([]byte, 0, len(indent)*indentCacheDepth)
	for i := 0; i < indentCacheDepth; i++ {
		cache = append(cache, indent...)
	}
	return cache
}

// writeBreak emits a newline followed by depth units of indentation.
func (f *fixer) writeBreak(depth int) {
	f.out = append(f.out, f.opts.Newline...)
	if f.opts.Indent == "" || depth == 0 {
		return
	}
	if depth <= indentCacheDepth {
		f.out = append(f.out, f.indentCache[:depth*len(f.opts.Indent)]...)
		return
	}
	for i := 0; i < depth; i++ {
		f.out = append(f.out, f.opts.Indent...)
	}
}

// writeComma emits a comma at the current depth.
func (f *fixer) writeComma() {
	f.out = append(f.out, ',')
	f.writeBreak(len(f.stack))
}

// trimTrailingComma erases the most recently written comma, reaching back
// through any formatting whitespace that followed it. Output that does not
// end in a comma is left untouched.
func (f *fixer) trimTrailingComma() {
	i := len(f.out)
	for i > 0 && isSpace(f.out[i-1]) {
		i--
	}
	if i > 0 && f.out[i-1] == ',' {
		f.out = f.out[:i-1]
	}
}

// trimTrailingSpace erases formatting whitespace at the end of the output,
// so closing an empty container does not leave a dangling indented line.
func (f *fixer) trimTrailingSpace() {
	for len(f.out) > 0 && isSpace(f.out[len(f.out)-1]) {
		f.out = f.out[:len(f.out)-1]
	}
}
