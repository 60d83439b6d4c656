package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCodec is returned when a codec name does not match any
	// registered variant.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrDuplicateCodec is returned when the same codec appears twice in a
	// requested list; decode precedence makes order significant, so a
	// duplicate is always a configuration mistake.
	ErrDuplicateCodec = errors.New("duplicate codec")
)

// all is the closed set of codec variants, keyed by stable name.
var all = map[string]Codec{
	HTMLEntity.Name():   HTMLEntity,
	Percent.Name():      Percent,
	JavaScript.Name():   JavaScript,
	CSS.Name():          CSS,
	LDAPFilter.Name():   LDAPFilter,
	LDAPDN.Name():       LDAPDN,
	XML.Name():          XML,
	XMLAttribute.Name(): XMLAttribute,
	XPath.Name():        XPath,
	JSON.Name():         JSON,
	VBScript.Name():     VBScript,
	Unix.Name():         Unix,
	Windows.Name():      Windows,
}

// ByName returns the codec registered under name.
func ByName(name string) (Codec, error) {
	c, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// List resolves names into an ordered codec list, preserving insertion
// order and rejecting unknown names and duplicates.
func List(names ...string) ([]Codec, error) {
	seen := make(map[string]struct{}, len(names))
	list := make([]Codec, 0, len(names))
	for _, name := range names {
		c, err := ByName(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCodec, name)
		}
		seen[name] = struct{}{}
		list = append(list, c)
	}
	return list, nil
}
