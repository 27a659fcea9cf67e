// Package rjson repairs structurally damaged JSON in a single pass.
// Created by dhawalhost (2026-08-14 09:27:41)
//
// The repair engine scans the input once, byte by byte, tracking which token
// kinds may legally appear next and which containers are still open. Broken
// structure is fixed on the way out: missing closers are synthesized, extra
// closers are dropped, trailing commas are removed, bare true/false/null
// literals are normalized, and value fragments that cannot be recovered are
// replaced with null. The same pass emits the final formatting, so repair and
// pretty-printing (or minification) never require a second scan.
package rjson

// token identifies a kind of JSON token the scanner can accept next.
// Kinds are bit flags so a set of acceptable kinds is a single word.
type token uint16

const (
	tokObjectStart token = 1 << iota
	tokObjectEnd
	tokArrayStart
	tokArrayEnd
	tokKeyStart
	tokKeyEnd
	tokColon
	tokComma
	tokValueStringStart
	tokValueStringEnd
	tokValueNumber
	tokValueBool
	tokValueNull
)

// Composite sets used throughout the scan loop.
const (
	// tokValueStarters is every kind that can begin a value.
	tokValueStarters = tokValueStringStart | tokValueNumber | tokValueBool |
		tokValueNull | tokObjectStart | tokArrayStart

	// tokAfterValue is what may follow a completed value.
	tokAfterValue = tokComma | tokObjectEnd | tokArrayEnd

	// tokInString marks that the scanner is inside a quoted key or value.
	tokInString = tokKeyEnd | tokValueStringEnd
)

// container is an open structural marker on the nesting stack.
type container byte

const (
	containerObject container = '{'
	containerArray  container = '['
)

// closer returns the closing bracket matching the container kind.
func (c container) closer() byte {
	if c == containerObject {
		return '}'
	}
	return ']'
}

// fixer holds the per-call scan state. A fresh fixer is built for every
// invocation, so concurrent calls never share mutable state.
type fixer struct {
	src  []byte
	out  []byte
	opts Options

	stack  []container
	expect token

	escaping          bool // previous copied byte inside a string was an unconsumed backslash
	valueWillStart    bool // a colon or array comma promised a fresh value
	valueBeingIgnored bool // swallowing a fragment already replaced by null

	indentCache []byte
}

func newFixer(src []byte, opts Options) *fixer {
	f := &fixer{
		src:  src,
		out:  make([]byte, 0, len(src)+16),
		opts: opts,
	}
	if opts.Indent != "" {
		f.indentCache = buildIndentCache(opts.Indent)
	}
	return f
}

// run drives the whole repair: root inference, the main scan, and the
// end-of-input drain that settles whatever is still open.
func (f *fixer) run() []byte {
	i := 0
	for i < len(f.src) && isSpace(f.src[i]) {
		i++
	}
	f.inferRoot(i)

	for ; i < len(f.src); i++ {
		c := f.src[i]
		if f.expect&tokInString != 0 {
			f.stringByte(c)
			continue
		}
		switch c {
		case '{', '[':
			f.beginContainer(c)
		case '}':
			f.endContainer(tokObjectEnd, containerObject)
		case ']':
			f.endContainer(tokArrayEnd, containerArray)
		case '"':
			f.quote()
		case ':':
			f.colon()
		case ',':
			f.comma()
		default:
			i = f.literalByte(i)
		}
	}

	f.finish()
	return f.out
}

// inferRoot synthesizes the root opener when the input does not start with
// one. The first closing bracket found decides the kind; an input with no
// structural bytes at all defaults to an object.
func (f *fixer) inferRoot(i int) {
	if i < len(f.src) && (f.src[i] == '{' || f.src[i] == '[') {
		return
	}
	opener := byte('{')
	for j := i; j < len(f.src); j++ {
		if f.src[j] == '}' {
			break
		}
		if f.src[j] == ']' {
			opener = '['
			break
		}
	}
	f.openContainer(opener)
}

// beginContainer handles a '{' or '[' byte. An opener arriving where no new
// container is licensed means the previous sibling never closed: settle it
// first, then separate the two with a comma.
func (f *fixer) beginContainer(c byte) {
	if len(f.stack) > 0 && f.expect&tokArrayStart == 0 {
		f.trimTrailingComma()
		f.closeTop()
		f.writeComma()
	}
	f.openContainer(c)
}

// openContainer emits the opener, pushes it, and resets expectations to what
// that container may legally contain first.
func (f *fixer) openContainer(c byte) {
	f.out = append(f.out, c)
	f.stack = append(f.stack, container(c))
	f.writeBreak(len(f.stack))
	if c == '{' {
		f.expect = tokKeyStart | tokObjectEnd
		f.valueWillStart = false
	} else {
		f.expect = tokValueStarters | tokArrayEnd
		f.valueWillStart = true
	}
}

// endContainer handles a '}' or ']' byte. Closers that no expectation
// licenses are dropped. A closer of the wrong kind first settles the
// actually-open container with its own bracket, resolving one level of
// mismatch.
func (f *fixer) endContainer(end token, want container) {
	if f.expect&end == 0 {
		return
	}
	f.trimTrailingComma()
	if top, ok := f.top(); ok && top != want {
		f.closeTop()
	}
	if top, ok := f.top(); ok && top == want {
		f.closeTop()
	}
	f.expect = tokAfterValue
	f.valueWillStart = false
	f.valueBeingIgnored = false
}

// quote handles a '"' byte outside of any string. The role of the quote is
// decided entirely by the current expectations; a quote that fits no role is
// dropped.
func (f *fixer) quote() {
	switch {
	case f.expect&tokValueStringStart != 0:
		f.out = append(f.out, '"')
		f.expect = tokValueStringEnd
		f.valueWillStart = false
	case f.expect&tokKeyStart != 0 && f.topIsObject():
		f.out = append(f.out, '"')
		f.expect = tokKeyEnd
		f.valueWillStart = false
	}
}

// stringByte copies one byte of an open key or string value, watching for the
// terminating quote and tracking backslash escapes.
func (f *fixer) stringByte(c byte) {
	if c == '"' && !f.escaping {
		f.out = append(f.out, '"')
		if f.expect&tokKeyEnd != 0 {
			f.expect = tokColon
		} else {
			f.expect = tokAfterValue
		}
		return
	}
	f.out = append(f.out, c)
	if f.escaping {
		f.escaping = false
	} else if c == '\\' {
		f.escaping = true
	}
}

func (f *fixer) colon() {
	if f.expect&tokColon == 0 {
		return
	}
	f.out = append(f.out, ':')
	f.out = append(f.out, f.opts.Separator...)
	f.valueWillStart = true
	f.expect = tokValueStarters
}

// comma handles a ',' byte. A comma arriving while a discarded fragment is
// being swallowed belongs to that fragment and is not emitted; the null
// placeholder already closed the slot.
func (f *fixer) comma() {
	if f.valueBeingIgnored {
		f.valueBeingIgnored = false
		return
	}
	if f.expect&tokComma == 0 {
		return
	}
	f.writeComma()
	if f.topIsObject() {
		f.expect = tokKeyStart
	} else {
		// Arrays tolerate keyed elements that arrived out of place.
		f.expect = tokKeyStart | tokValueStarters | tokArrayEnd
		f.valueWillStart = true
	}
}

// literalByte handles every byte the structural cases above did not claim:
// whitespace, bare literals, bare numbers, and unrecoverable fragments.
// It returns the scan index, advanced when a literal lookahead matched.
func (f *fixer) literalByte(i int) int {
	c := f.src[i]
	if isSpace(c) {
		return i
	}
	if f.valueWillStart {
		f.valueWillStart = false
		if n := f.matchLiteral(i); n > 0 {
			return i + n - 1
		}
		if isNumberStart(c) && f.expect&tokValueNumber != 0 {
			f.out = append(f.out, c)
			f.expect = tokValueNumber | tokAfterValue
			return i
		}
		// Unrecoverable fragment: substitute null and swallow the rest of
		// it, up to the next recognized delimiter.
		f.out = append(f.out, "null"...)
		f.valueBeingIgnored = true
		f.expect = tokAfterValue
		return i
	}
	if f.expect&tokValueNumber != 0 && isNumberByte(c) {
		f.out = append(f.out, c)
	}
	return i
}

// matchLiteral matches null, true, or false case-insensitively at i, emitting
// the canonical lowercase form. It returns the matched length, or zero.
func (f *fixer) matchLiteral(i int) int {
	for _, lit := range [...]string{"null", "true", "false"} {
		if !foldMatch(f.src[i:], lit) {
			continue
		}
		f.out = append(f.out, lit...)
		f.expect = tokAfterValue
		return len(lit)
	}
	return 0
}

// finish settles end-of-input state: an unterminated key or string value gets
// its closing quote (a dangling key also gets a null value, a dangling colon
// gets one too), then one trailing comma is trimmed and every container still
// open is closed in LIFO order.
func (f *fixer) finish() {
	switch {
	case f.expect&tokInString != 0:
		if f.escaping {
			// A lone trailing backslash would escape the synthesized quote.
			f.out = f.out[:len(f.out)-1]
		}
		f.out = append(f.out, '"')
		if f.expect&tokKeyEnd != 0 {
			f.writeNullValue()
		}
	case f.expect&tokColon != 0:
		f.writeNullValue()
	case f.valueWillStart && f.expect&(tokObjectEnd|tokArrayEnd) == 0:
		f.out = append(f.out, "null"...)
	}
	f.trimTrailingComma()
	for len(f.stack) > 0 {
		f.closeTop()
	}
}

// writeNullValue completes a key that never received a value.
func (f *fixer) writeNullValue() {
	f.out = append(f.out, ':')
	f.out = append(f.out, f.opts.Separator...)
	f.out = append(f.out, "null"...)
}

// closeTop pops the innermost open container and emits its closer at the
// right indentation. Whitespace left from formatting an empty container is
// trimmed first.
func (f *fixer) closeTop() {
	if len(f.stack) == 0 {
		return
	}
	top := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	f.trimTrailingSpace()
	f.writeBreak(len(f.stack))
	f.out = append(f.out, top.closer())
}

func (f *fixer) top() (container, bool) {
	if len(f.stack) == 0 {
		return 0, false
	}
	return f.stack[len(f.stack)-1], true
}

func (f *fixer) topIsObject() bool {
	top, ok := f.top()
	return ok && top == containerObject
}

//------------------------------------------------------------------------------
// BYTE CLASSIFICATION
//------------------------------------------------------------------------------

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '.'
}

func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E'
}

// foldMatch reports whether src begins with lit, ignoring ASCII case.
func foldMatch(src []byte, lit string) bool {
	if len(src) < len(lit) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if src[i]|0x20 != lit[i] {
			return false
		}
	}
	return true
}
