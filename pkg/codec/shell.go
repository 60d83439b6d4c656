package codec

// Unix escapes characters for POSIX shell command lines by prefixing every
// non-alphanumeric character with a backslash; decode strips one backslash
// from any escaped character.
var Unix Codec = unixCodec{}

// Windows escapes characters for cmd.exe command lines using the caret
// escape character.
var Windows Codec = windowsCodec{}

type unixCodec struct{}

func (unixCodec) Name() string { return "UnixCodec" }

func (unixCodec) EncodeCharacter(immune []rune, r rune) string {
	if isAlphanumeric(r) || containsRune(immune, r) {
		return string(r)
	}
	return "\\" + string(r)
}

func (unixCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	if ps.Next() != '\\' {
		ps.Reset()
		return 0, false
	}
	if !ps.HasNext() {
		ps.Reset()
		return 0, false
	}
	return ps.Next(), true
}

type windowsCodec struct{}

func (windowsCodec) Name() string { return "WindowsCodec" }

func (windowsCodec) EncodeCharacter(immune []rune, r rune) string {
	if isAlphanumeric(r) || containsRune(immune, r) {
		return string(r)
	}
	return "^" + string(r)
}

func (windowsCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	if ps.Next() != '^' {
		ps.Reset()
		return 0, false
	}
	if !ps.HasNext() {
		ps.Reset()
		return 0, false
	}
	return ps.Next(), true
}
