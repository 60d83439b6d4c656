package encoder

import (
	"fmt"
	"net/url"
	"strings"
)

// GetCanonicalizedURI decomposes uri into its components, canonicalizes
// each component independently, and reassembles them positionally. The URI
// is never canonicalized as one flat string: decoding a query value that
// contains '&' or '=' must not corrupt the structural delimiters around it.
func (e *Encoder) GetCanonicalizedURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}

	var b strings.Builder

	if u.Scheme != "" {
		scheme, err := e.Canonicalize(u.Scheme)
		if err != nil {
			return "", err
		}
		b.WriteString(scheme)
		b.WriteByte(':')
	}

	// Opaque URIs (mailto:, urn:, tel:) have no authority/path structure;
	// the scheme-specific part is one component.
	if u.Opaque != "" {
		opaque, err := e.Canonicalize(u.Opaque)
		if err != nil {
			return "", err
		}
		b.WriteString(opaque)
	} else {
		if u.Host != "" || u.User != nil {
			b.WriteString("//")
			if u.User != nil {
				userinfo, err := e.Canonicalize(u.User.String())
				if err != nil {
					return "", err
				}
				b.WriteString(userinfo)
				b.WriteByte('@')
			}
			host, err := e.Canonicalize(u.Host)
			if err != nil {
				return "", err
			}
			b.WriteString(host)
		}

		path, err := e.Canonicalize(u.EscapedPath())
		if err != nil {
			return "", err
		}
		b.WriteString(path)
	}

	if u.RawQuery != "" {
		query, err := e.canonicalizeQuery(u.RawQuery)
		if err != nil {
			return "", err
		}
		b.WriteByte('?')
		b.WriteString(query)
	}
	if u.Fragment != "" {
		fragment, err := e.Canonicalize(u.EscapedFragment())
		if err != nil {
			return "", err
		}
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String(), nil
}

// canonicalizeQuery canonicalizes each name and value of the query in
// isolation, preserving pair order and the '&'/'=' structure. url.Values is
// deliberately not used: it is a map and loses the original ordering.
func (e *Encoder) canonicalizeQuery(rawQuery string) (string, error) {
	pairs := strings.Split(rawQuery, "&")
	out := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		name, value, hasValue := strings.Cut(pair, "=")
		cname, err := e.Canonicalize(name)
		if err != nil {
			return "", err
		}
		if !hasValue {
			out = append(out, cname)
			continue
		}
		cvalue, err := e.Canonicalize(value)
		if err != nil {
			return "", err
		}
		out = append(out, cname+"="+cvalue)
	}
	return strings.Join(out, "&"), nil
}
