package encoder

import (
	"context"

	"github.com/dmitrymomot/encodekit/pkg/codec"
	"github.com/dmitrymomot/encodekit/pkg/secevent"
)

// maxDecodePasses bounds the canonicalization loop. Legitimate input is
// fully decoded in one or two passes; anything still producing matches
// after this many passes is adversarial layering, and the loop must
// terminate on it rather than spin.
const maxDecodePasses = 10

// Canonicalize reduces input to its simplest decoded form using the
// configured restriction flags. It returns an *IntrusionError when
// disallowed multiple or mixed encoding is detected.
func (e *Encoder) Canonicalize(input string) (string, error) {
	return e.CanonicalizeWith(input, e.restrictMultiple, e.restrictMixed)
}

// CanonicalizeStrict applies strict to both restriction flags uniformly.
func (e *Encoder) CanonicalizeStrict(input string, strict bool) (string, error) {
	return e.CanonicalizeWith(input, strict, strict)
}

// CanonicalizeWith runs the iterative multi-codec decode loop with explicit
// policy flags.
//
// Each pass asks every codec in order for a full-string decode of the
// current working text. A codec matching again on a later pass means the
// same scheme was applied more than once (multiple encoding); a second
// codec matching at any point means two schemes were layered (mixed
// encoding). The loop stops as soon as a pass decodes nothing, or at the
// pass cap. Detected conditions are always reported to the sink; they fail
// the call only under the matching restriction flag, otherwise the
// best-effort canonical text is returned.
func (e *Encoder) CanonicalizeWith(input string, restrictMultiple, restrictMixed bool) (string, error) {
	working := input
	passesFired := make(map[string]int, len(e.codecs))
	var firedOrder []string

	for pass := 0; pass < maxDecodePasses; pass++ {
		changed := false
		for _, c := range e.codecs {
			decoded, n := codec.Decode(c, working)
			if n == 0 {
				continue
			}
			if passesFired[c.Name()] == 0 {
				firedOrder = append(firedOrder, c.Name())
			}
			passesFired[c.Name()]++
			working = decoded
			changed = true
		}
		if !changed {
			break
		}
	}

	multiple := false
	for _, n := range passesFired {
		if n > 1 {
			multiple = true
			break
		}
	}
	mixed := len(firedOrder) > 1

	if !multiple && !mixed {
		return working, nil
	}

	if (multiple && restrictMultiple) || (mixed && restrictMixed) {
		intrusion := &IntrusionError{
			Multiple: multiple && restrictMultiple,
			Mixed:    mixed && restrictMixed,
			Codecs:   firedOrder,
		}
		condition := secevent.ConditionMixedEncoding
		if intrusion.Multiple {
			condition = secevent.ConditionMultipleEncoding
		}
		e.report(secevent.New("canonicalize", secevent.SeverityIntrusion,
			secevent.WithCondition(condition),
			secevent.WithCodecs(firedOrder...),
			secevent.WithInput(input),
			secevent.WithMessage(intrusion.Error()),
		))
		return "", intrusion
	}

	// Tolerated occurrences are still reported, one event per condition,
	// so operators can observe attack attempts that were let through.
	if multiple {
		e.report(secevent.New("canonicalize", secevent.SeverityWarning,
			secevent.WithCondition(secevent.ConditionMultipleEncoding),
			secevent.WithCodecs(firedOrder...),
			secevent.WithInput(input),
		))
	}
	if mixed {
		e.report(secevent.New("canonicalize", secevent.SeverityWarning,
			secevent.WithCondition(secevent.ConditionMixedEncoding),
			secevent.WithCodecs(firedOrder...),
			secevent.WithInput(input),
		))
	}
	return working, nil
}

// report delivers an event to the sink without letting the sink interfere
// with the encode path: a panicking or misbehaving sink is swallowed.
func (e *Encoder) report(event secevent.Event) {
	if e.sink == nil {
		return
	}
	defer func() { _ = recover() }()
	e.sink.Record(context.Background(), event)
}
