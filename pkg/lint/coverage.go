package lint

import (
	"fmt"
	"strings"

	"testdeck/pkg/deck"
	"testdeck/pkg/rules"
)

// checkRuleCoverage verifies that a deck teaching the message-testing
// rules actually mentions every classification the rule table contains.
// A classification counts as covered when some slide names both its
// origin and its kind.
func checkRuleCoverage(d *deck.Deck, _ Options) []Finding {
	var findings []Finding
	for _, row := range rules.Table() {
		if coveredBy(d, row) {
			continue
		}
		findings = append(findings, Finding{
			Check:    CheckRuleCoverage,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("no slide covers %s %s (%s)", row.Origin, row.Kind, row.Rule.Guidance),
		})
	}
	return findings
}

func coveredBy(d *deck.Deck, row rules.Classification) bool {
	for _, slide := range d.Slides {
		text := strings.ToLower(slide.Body)
		if mentionsOrigin(text, row.Origin) && mentionsKind(text, row.Kind) {
			return true
		}
	}
	return false
}

func mentionsOrigin(text string, origin rules.Origin) bool {
	switch origin {
	case rules.OriginSelf:
		return strings.Contains(text, "self") || strings.Contains(text, "private")
	default:
		return strings.Contains(text, origin.String())
	}
}

func mentionsKind(text string, kind rules.Kind) bool {
	switch kind {
	case rules.KindQueryCommand:
		return strings.Contains(text, "query") && strings.Contains(text, "command") ||
			strings.Contains(text, "both")
	default:
		return strings.Contains(text, kind.String())
	}
}
