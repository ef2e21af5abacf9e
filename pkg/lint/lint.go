// Package lint runs structural checks over a parsed deck.
package lint

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"testdeck/pkg/deck"
)

// Severity ranks a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one lint result, tied to a check ID and a slide number.
// Slide 0 means the finding applies to the deck as a whole.
type Finding struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Slide    int      `json:"slide,omitempty"`
	Message  string   `json:"message"`
}

// Report collects the findings for one deck.
type Report struct {
	DeckPath string    `json:"deck,omitempty"`
	Findings []Finding `json:"findings"`
}

// HasErrors reports whether any finding is error severity.
func (r Report) HasErrors() bool {
	return lo.SomeBy(r.Findings, func(f Finding) bool {
		return f.Severity == SeverityError
	})
}

// Summary counts findings per severity.
func (r Report) Summary() map[Severity]int {
	return lo.CountValuesBy(r.Findings, func(f Finding) Severity {
		return f.Severity
	})
}

// Options selects and tunes checks.
type Options struct {
	// Disabled lists check IDs to skip.
	Disabled []string
	// MaxSlideLines flags slides whose body exceeds this many lines.
	// Zero means the default of 20.
	MaxSlideLines int
	// RuleCoverage additionally verifies that the deck teaches every
	// message classification in the rules table.
	RuleCoverage bool
}

const defaultMaxSlideLines = 20

type check struct {
	id    string
	apply func(*deck.Deck, Options) []Finding
}

var checks = []check{
	{id: CheckNoHeading, apply: checkNoHeading},
	{id: CheckUnclosedFence, apply: checkUnclosedFence},
	{id: CheckLongSlide, apply: checkLongSlide},
	{id: CheckDuplicateHeading, apply: checkDuplicateHeading},
	{id: CheckUnknownDirective, apply: checkUnknownDirective},
	{id: CheckRuleCoverage, apply: checkRuleCoverage},
}

// Check IDs, stable across releases so configs can disable them by name.
const (
	CheckNoHeading        = "no-heading"
	CheckUnclosedFence    = "unclosed-fence"
	CheckLongSlide        = "long-slide"
	CheckDuplicateHeading = "duplicate-heading"
	CheckUnknownDirective = "unknown-directive"
	CheckRuleCoverage     = "rule-coverage"
)

// Run applies every enabled check to the deck.
func Run(d *deck.Deck, opts Options) Report {
	report := Report{DeckPath: d.Path}

	disabled := lo.SliceToMap(opts.Disabled, func(id string) (string, bool) {
		return strings.TrimSpace(id), true
	})

	for _, c := range checks {
		if disabled[c.id] {
			continue
		}
		if c.id == CheckRuleCoverage && !opts.RuleCoverage {
			continue
		}
		report.Findings = append(report.Findings, c.apply(d, opts)...)
	}

	return report
}

func checkNoHeading(d *deck.Deck, _ Options) []Finding {
	var findings []Finding
	for _, slide := range d.Slides {
		if slide.Heading == "" {
			findings = append(findings, Finding{
				Check:    CheckNoHeading,
				Severity: SeverityWarning,
				Slide:    slide.Number,
				Message:  "slide has no heading",
			})
		}
	}
	return findings
}

func checkUnclosedFence(d *deck.Deck, _ Options) []Finding {
	var findings []Finding
	for _, slide := range d.Slides {
		fences := 0
		for _, line := range strings.Split(slide.Body, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				fences++
			}
		}
		if fences%2 != 0 {
			findings = append(findings, Finding{
				Check:    CheckUnclosedFence,
				Severity: SeverityError,
				Slide:    slide.Number,
				Message:  "code fence is never closed",
			})
		}
	}
	return findings
}

func checkLongSlide(d *deck.Deck, opts Options) []Finding {
	limit := opts.MaxSlideLines
	if limit <= 0 {
		limit = defaultMaxSlideLines
	}

	var findings []Finding
	for _, slide := range d.Slides {
		lines := len(strings.Split(slide.Body, "\n"))
		if lines > limit {
			findings = append(findings, Finding{
				Check:    CheckLongSlide,
				Severity: SeverityWarning,
				Slide:    slide.Number,
				Message:  fmt.Sprintf("slide body has %d lines, limit is %d", lines, limit),
			})
		}
	}
	return findings
}

func checkDuplicateHeading(d *deck.Deck, _ Options) []Finding {
	byHeading := lo.GroupBy(
		lo.Filter(d.Slides, func(s deck.Slide, _ int) bool { return s.Heading != "" }),
		func(s deck.Slide) string { return strings.ToLower(s.Heading) },
	)

	var findings []Finding
	for _, slides := range byHeading {
		if len(slides) < 2 {
			continue
		}
		for _, slide := range slides[1:] {
			findings = append(findings, Finding{
				Check:    CheckDuplicateHeading,
				Severity: SeverityWarning,
				Slide:    slide.Number,
				Message:  fmt.Sprintf("heading %q repeats slide %d", slide.Heading, slides[0].Number),
			})
		}
	}
	return findings
}

// knownDirectives are the per-slide comment directives the renderer reads.
var knownDirectives = map[string]bool{
	"class":    true,
	"footer":   true,
	"paginate": true,
	"notes":    true,
}

func checkUnknownDirective(d *deck.Deck, _ Options) []Finding {
	var findings []Finding
	for _, slide := range d.Slides {
		for key := range slide.Directives {
			if !knownDirectives[key] {
				findings = append(findings, Finding{
					Check:    CheckUnknownDirective,
					Severity: SeverityWarning,
					Slide:    slide.Number,
					Message:  fmt.Sprintf("unknown directive %q", key),
				})
			}
		}
	}
	return findings
}
