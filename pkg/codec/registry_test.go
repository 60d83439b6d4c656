package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/encodekit/pkg/codec"
)

func TestByName(t *testing.T) {
	t.Run("resolves every variant", func(t *testing.T) {
		for _, name := range []string{
			"HTMLEntityCodec", "PercentCodec", "JavaScriptCodec", "CSSCodec",
			"LDAPFilterCodec", "LDAPDNCodec", "XMLCodec", "XMLAttributeCodec",
			"XPathCodec", "JSONCodec", "VBScriptCodec", "UnixCodec", "WindowsCodec",
		} {
			c, err := codec.ByName(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, c.Name())
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := codec.ByName("ROT13Codec")
		assert.ErrorIs(t, err, codec.ErrUnknownCodec)
	})
}

func TestList(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		list, err := codec.List("PercentCodec", "HTMLEntityCodec")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "PercentCodec", list[0].Name())
		assert.Equal(t, "HTMLEntityCodec", list[1].Name())
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := codec.List("PercentCodec", "PercentCodec")
		assert.ErrorIs(t, err, codec.ErrDuplicateCodec)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := codec.List("PercentCodec", "NopeCodec")
		assert.ErrorIs(t, err, codec.ErrUnknownCodec)
	})

	t.Run("empty list is valid", func(t *testing.T) {
		list, err := codec.List()
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
