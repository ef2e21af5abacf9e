package lint

import (
	"testing"

	"testdeck/pkg/deck"
)

func parseDeck(t *testing.T, content string) *deck.Deck {
	t.Helper()

	parsed, err := deck.Parse([]byte(content))
	if err != nil {
		t.Fatalf("parse deck: %v", err)
	}
	return parsed
}

func findingsFor(report Report, check string) []Finding {
	var matched []Finding
	for _, f := range report.Findings {
		if f.Check == check {
			matched = append(matched, f)
		}
	}
	return matched
}

func TestCleanDeckHasNoFindings(t *testing.T) {
	d := parseDeck(t, "---\ntitle: Clean\n---\n\n# One\n\nBody.\n\n---\n\n# Two\n\nBody.\n")

	report := Run(d, Options{})
	if len(report.Findings) != 0 {
		t.Fatalf("findings = %v, want none", report.Findings)
	}
	if report.HasErrors() {
		t.Fatal("HasErrors = true, want false")
	}
}

func TestNoHeadingCheck(t *testing.T) {
	d := parseDeck(t, "---\ntitle: T\n---\n\n# Fine\n\n---\n\nNo heading here.\n")

	found := findingsFor(Run(d, Options{}), CheckNoHeading)
	if len(found) != 1 {
		t.Fatalf("no-heading findings = %v, want one", found)
	}
	if found[0].Slide != 2 {
		t.Fatalf("finding slide = %d, want 2", found[0].Slide)
	}
	if found[0].Severity != SeverityWarning {
		t.Fatalf("severity = %s, want warning", found[0].Severity)
	}
}

func TestUnclosedFenceIsError(t *testing.T) {
	d := parseDeck(t, "---\ntitle: T\n---\n\n# Code\n\n```go\nfunc main() {}\n")

	report := Run(d, Options{})
	found := findingsFor(report, CheckUnclosedFence)
	if len(found) != 1 {
		t.Fatalf("unclosed-fence findings = %v, want one", found)
	}
	if !report.HasErrors() {
		t.Fatal("HasErrors = false, want true")
	}
}

func TestLongSlideUsesConfiguredLimit(t *testing.T) {
	d := parseDeck(t, "---\ntitle: T\n---\n\n# Long\n\na\nb\nc\nd\n")

	if found := findingsFor(Run(d, Options{}), CheckLongSlide); len(found) != 0 {
		t.Fatalf("default limit flagged a short slide: %v", found)
	}

	found := findingsFor(Run(d, Options{MaxSlideLines: 3}), CheckLongSlide)
	if len(found) != 1 {
		t.Fatalf("long-slide findings = %v, want one", found)
	}
}

func TestDuplicateHeadingCheck(t *testing.T) {
	d := parseDeck(t, "---\ntitle: T\n---\n\n# Intro\n\nx\n\n---\n\n# intro\n\ny\n")

	found := findingsFor(Run(d, Options{}), CheckDuplicateHeading)
	if len(found) != 1 {
		t.Fatalf("duplicate-heading findings = %v, want one", found)
	}
	if found[0].Slide != 2 {
		t.Fatalf("finding slide = %d, want 2", found[0].Slide)
	}
}

func TestUnknownDirectiveCheck(t *testing.T) {
	d := parseDeck(t, "---\ntitle: T\n---\n\n<!-- transition: fade -->\n\n# Slide\n\nx\n")

	found := findingsFor(Run(d, Options{}), CheckUnknownDirective)
	if len(found) != 1 {
		t.Fatalf("unknown-directive findings = %v, want one", found)
	}
}

func TestDisabledCheckIsSkipped(t *testing.T) {
	d := parseDeck(t, "---\ntitle: T\n---\n\nNo heading here.\n")

	report := Run(d, Options{Disabled: []string{CheckNoHeading}})
	if found := findingsFor(report, CheckNoHeading); len(found) != 0 {
		t.Fatalf("disabled check still ran: %v", found)
	}
}

func TestRuleCoverageOffByDefault(t *testing.T) {
	d := parseDeck(t, "---\ntitle: T\n---\n\n# Unrelated\n\nx\n")

	if found := findingsFor(Run(d, Options{}), CheckRuleCoverage); len(found) != 0 {
		t.Fatalf("rule-coverage ran without opt-in: %v", found)
	}
}

func TestRuleCoverageFlagsMissingClassifications(t *testing.T) {
	d := parseDeck(t, "---\ntitle: T\n---\n\n# Incoming query\n\nassert the value\n")

	found := findingsFor(Run(d, Options{RuleCoverage: true}), CheckRuleCoverage)
	if len(found) == 0 {
		t.Fatal("expected uncovered classifications to be flagged")
	}
	// Incoming query itself is covered, so fewer than the full table.
	if len(found) >= 9 {
		t.Fatalf("rule-coverage findings = %d, want fewer than the full table", len(found))
	}
}

func TestRuleCoverageCleanOnBuiltinDeck(t *testing.T) {
	builtin, err := deck.Builtin()
	if err != nil {
		t.Fatalf("load builtin deck: %v", err)
	}

	report := Run(builtin, Options{RuleCoverage: true})
	if found := findingsFor(report, CheckRuleCoverage); len(found) != 0 {
		t.Fatalf("builtin deck misses classifications: %v", found)
	}
	if report.HasErrors() {
		t.Fatalf("builtin deck has lint errors: %v", report.Findings)
	}
}

func TestSummaryCountsBySeverity(t *testing.T) {
	d := parseDeck(t, "---\ntitle: T\n---\n\n```go\nbroken fence\n")

	summary := Run(d, Options{}).Summary()
	if summary[SeverityError] != 1 {
		t.Fatalf("summary errors = %d, want 1", summary[SeverityError])
	}
	if summary[SeverityWarning] != 1 {
		t.Fatalf("summary warnings = %d, want 1 (no heading)", summary[SeverityWarning])
	}
}
