package codec

import "unicode/utf8"

// PushbackString is a rune cursor over an input string with single-level
// mark/reset support. DecodeCharacter implementations mark the cursor on
// entry and reset it before reporting no-match, which is what guarantees
// the "cursor unchanged on no-match" contract.
type PushbackString struct {
	input string
	index int
	mark  int
}

// NewPushbackString returns a cursor positioned at the start of input.
func NewPushbackString(input string) *PushbackString {
	return &PushbackString{input: input}
}

// HasNext reports whether any input remains.
func (p *PushbackString) HasNext() bool {
	return p.index < len(p.input)
}

// Next consumes and returns the next rune, or 0 when the input is
// exhausted. Invalid UTF-8 bytes are consumed one at a time as U+FFFD.
func (p *PushbackString) Next() rune {
	if p.index >= len(p.input) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(p.input[p.index:])
	p.index += size
	return r
}

// Peek returns the next rune without consuming it, or 0 when exhausted.
func (p *PushbackString) Peek() rune {
	if p.index >= len(p.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.index:])
	return r
}

// PeekIs reports whether the next rune equals r.
func (p *PushbackString) PeekIs(r rune) bool {
	return p.HasNext() && p.Peek() == r
}

// Mark records the current position for a later Reset.
func (p *PushbackString) Mark() {
	p.mark = p.index
}

// Reset rewinds the cursor to the last Mark.
func (p *PushbackString) Reset() {
	p.index = p.mark
}

// Remainder returns the unconsumed tail of the input.
func (p *PushbackString) Remainder() string {
	return p.input[p.index:]
}

// advance moves the cursor forward by n bytes. Callers must ensure n does
// not split a UTF-8 sequence.
func (p *PushbackString) advance(n int) {
	p.index += n
	if p.index > len(p.input) {
		p.index = len(p.input)
	}
}

// position returns the raw byte offset, paired with restore for codecs that
// need more than one rewind point while assembling multi-byte sequences.
func (p *PushbackString) position() int {
	return p.index
}

func (p *PushbackString) restore(pos int) {
	p.index = pos
}

// nextHexByte consumes two hex digits and returns their byte value. On
// anything else it restores the cursor to where it was and reports false.
func (p *PushbackString) nextHexByte() (byte, bool) {
	pos := p.index
	hi := p.Next()
	lo := p.Next()
	if !isHexDigit(hi) || !isHexDigit(lo) {
		p.restore(pos)
		return 0, false
	}
	return byte(hexValue(hi)<<4 | hexValue(lo)), true
}
