package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/encodekit/pkg/codec"
)

func TestVBScriptCodec(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		assert.Equal(t, "a", codec.VBScript.EncodeCharacter(nil, 'a'))
		assert.Equal(t, "chrw(60)", codec.VBScript.EncodeCharacter(nil, '<'))
		assert.Equal(t, "chrw(0)", codec.VBScript.EncodeCharacter(nil, 0x00))
	})

	t.Run("decode", func(t *testing.T) {
		out, n := codec.Decode(codec.VBScript, "chrw(60)x")
		assert.Equal(t, "<x", out)
		assert.Equal(t, 1, n)

		out, n = codec.Decode(codec.VBScript, "chrw()")
		assert.Equal(t, "chrw()", out)
		assert.Equal(t, 0, n)

		out, n = codec.Decode(codec.VBScript, "chrw(abc)")
		assert.Equal(t, "chrw(abc)", out)
		assert.Equal(t, 0, n)
	})
}
