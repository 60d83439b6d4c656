package codec

// XPath escapes characters for use inside XPath expressions. XPath has no
// escape syntax of its own, so the HTML entity grammar is used under a
// distinct codec name, matching how XML processors interpret the result.
var XPath Codec = xpathCodec{}

type xpathCodec struct{}

func (xpathCodec) Name() string { return "XPathCodec" }

func (xpathCodec) EncodeCharacter(immune []rune, r rune) string {
	return htmlEncodeCharacter(immune, r)
}

func (xpathCodec) DecodeCharacter(ps *PushbackString) (rune, bool) {
	return htmlDecodeCharacter(ps)
}
