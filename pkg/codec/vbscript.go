package codec

// VBScript encodes characters for VBScript string contexts using the
// chrw(N) function-call form and decodes that same form.
var VBScript Codec = vbScriptCodec{}

type vbScriptCodec struct{}

func (vbScriptCodec) Name() string { return "VBScriptCodec" }

func (vbScriptCodec) EncodeCharacter(immune []rune, r rune) string {
	if isAlphanumeric(r) || containsRune(immune, r) {
		return string(r)
	}
	var digits []byte
	v := r
	if v == 0 {
		digits = []byte{'0'}
	}
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return "chrw(" + string(digits) + ")"
}

func (vbScriptCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	ps.Mark()
	for _, want := range "chrw(" {
		if ps.Next() != want {
			ps.Reset()
			return 0, false
		}
	}
	var value int64
	digits := 0
	for ps.HasNext() && ps.Peek() >= '0' && ps.Peek() <= '9' {
		value = value*10 + int64(ps.Next()-'0')
		digits++
		if value > 0x10ffff {
			ps.Reset()
			return 0, false
		}
	}
	if digits == 0 || ps.Next() != ')' {
		ps.Reset()
		return 0, false
	}
	return rune(value), true
}
