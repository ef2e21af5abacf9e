// Package rules classifies object-to-object messages and selects the
// testing obligation that applies to each one.
//
// The classification follows the message-passing view of unit tests: the
// receiver of a message proves its result or effects, the sender of an
// outgoing message trusts the collaborator's own suite, and messages an
// object sends to itself are never tested directly.
package rules

import "fmt"

// Origin says where a message sits relative to the unit under test.
type Origin int

const (
	// OriginIncoming marks a message received by the unit under test.
	OriginIncoming Origin = iota
	// OriginOutgoing marks a message the unit sends to a collaborator.
	OriginOutgoing
	// OriginSelf marks a private message whose sender and receiver are
	// the same unit.
	OriginSelf
)

// Kind says what a message does: return a value, change state, or both.
type Kind int

const (
	// KindQuery returns a value and changes nothing observable.
	KindQuery Kind = iota
	// KindCommand changes observable state, usually without a meaningful
	// return value.
	KindCommand
	// KindQueryCommand does both at once, pop()-style.
	KindQueryCommand
)

// Rule is the testing obligation attached to one (origin, kind) pair.
// It is an immutable value; Select returns copies, never shared state.
type Rule struct {
	AssertReturnValue bool   `json:"assert_return_value"`
	AssertSideEffects bool   `json:"assert_side_effects"`
	ExpectCall        bool   `json:"expect_call"`
	Prohibited        bool   `json:"prohibited"`
	Guidance          string `json:"guidance"`
}

// Select maps a message classification to its testing obligation.
//
// The mapping is total over the known origins and kinds and pure: the same
// inputs always yield the same rule. A value outside the known enums fails
// with an unclassifiable-message error instead of defaulting.
func Select(origin Origin, kind Kind) (Rule, error) {
	if err := validate(origin, kind); err != nil {
		return Rule{}, err
	}

	if origin == OriginSelf {
		return Rule{
			Prohibited: true,
			Guidance:   "do not test private messages directly; they are covered by the public messages that trigger them",
		}, nil
	}

	if origin == OriginIncoming {
		rule := Rule{Guidance: "assert what the receiver promises"}
		switch kind {
		case KindQuery:
			rule.AssertReturnValue = true
			rule.Guidance = "assert the returned value"
		case KindCommand:
			rule.AssertSideEffects = true
			rule.Guidance = "assert the direct public side effects"
		case KindQueryCommand:
			rule.AssertReturnValue = true
			rule.AssertSideEffects = true
			rule.Guidance = "assert both the returned value and the direct public side effects"
		}
		return rule, nil
	}

	// Outgoing: the sender never re-proves the collaborator's behavior.
	switch kind {
	case KindQuery:
		return Rule{
			Prohibited: true,
			Guidance:   "do not assert the result and do not expect the call; trust the collaborator's own tests",
		}, nil
	default:
		// Commands, and query-commands treated as commands: the send is
		// the sender's only responsibility.
		return Rule{
			ExpectCall: true,
			Guidance:   "expect the call to have been sent; leave the effect to the receiver's tests",
		}, nil
	}
}

// MustSelect is Select for the static tables built at init time, where an
// unclassifiable pair is a programming error.
func MustSelect(origin Origin, kind Kind) Rule {
	rule, err := Select(origin, kind)
	if err != nil {
		panic(err)
	}
	return rule
}

func validate(origin Origin, kind Kind) error {
	if origin < OriginIncoming || origin > OriginSelf {
		return fmt.Errorf("unclassifiable message: unknown origin %d", int(origin))
	}
	if kind < KindQuery || kind > KindQueryCommand {
		return fmt.Errorf("unclassifiable message: unknown kind %d", int(kind))
	}
	return nil
}

// String returns the lowercase wire name used in CLI flags and lint output.
func (o Origin) String() string {
	switch o {
	case OriginIncoming:
		return "incoming"
	case OriginOutgoing:
		return "outgoing"
	case OriginSelf:
		return "self"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// String returns the lowercase wire name used in CLI flags and lint output.
func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "query"
	case KindCommand:
		return "command"
	case KindQueryCommand:
		return "query+command"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
