package safety

import (
	"testing"

	"github.com/solacekit/solace/internal/types"
)

func TestScanHighRisk(t *testing.T) {
	scanner := NewScanner()
	texts := []string{
		"I want to kill myself",
		"some days I just want to die",
		"I feel completely worthless",
		"I can't go on anymore",
		"maybe everyone would be better off dead without me",
		"Everything feels HOPELESS",
	}
	for _, text := range texts {
		verdict := scanner.Scan(text)
		if !verdict.IsRisk || verdict.Level != types.RiskHigh {
			t.Fatalf("Scan(%q) = %#v, want high risk", text, verdict)
		}
		if verdict.Message == "" || len(verdict.Recommendations) != 4 {
			t.Fatalf("high risk verdict missing script: %#v", verdict)
		}
		if verdict.Hotlines == nil || verdict.Hotlines.Primary.Phone == "" {
			t.Fatalf("high risk verdict missing hotline info: %#v", verdict)
		}
	}
}

func TestScanMediumRisk(t *testing.T) {
	scanner := NewScanner()
	texts := []string{
		"I am very depressed lately",
		"I have had thoughts of death",
		"I feel completely isolated from everyone",
	}
	for _, text := range texts {
		verdict := scanner.Scan(text)
		if !verdict.IsRisk || verdict.Level != types.RiskMedium {
			t.Fatalf("Scan(%q) = %#v, want medium risk", text, verdict)
		}
		if verdict.Hotlines == nil {
			t.Fatalf("medium risk verdict should include hotline info: %#v", verdict)
		}
	}
}

func TestScanNoRisk(t *testing.T) {
	scanner := NewScanner()
	verdict := scanner.Scan("I had a great day today")
	if verdict.IsRisk || verdict.Level != types.RiskNone {
		t.Fatalf("expected no risk, got %#v", verdict)
	}
	if verdict.Message != "" || verdict.Recommendations != nil || verdict.Hotlines != nil {
		t.Fatalf("no-risk verdict should be empty beyond level: %#v", verdict)
	}
}

func TestScanHighTierWinsOverMedium(t *testing.T) {
	scanner := NewScanner()
	// Contains both a tier-2 phrase ("very depressed") and a tier-1 phrase.
	verdict := scanner.Scan("I am very depressed and I want to die")
	if verdict.Level != types.RiskHigh {
		t.Fatalf("tier-1 match must take precedence, got %q", verdict.Level)
	}
}

func TestScanWordBoundaries(t *testing.T) {
	scanner := NewScanner()
	// "hopelessly" must not trigger the "hopeless" pattern, and "panicking"
	// must not trigger "panic".
	for _, text := range []string{
		"I'm hopelessly devoted to this hobby",
		"stop panicking about the deadline",
	} {
		if verdict := scanner.Scan(text); verdict.IsRisk {
			t.Fatalf("Scan(%q) should not match on substrings: %#v", text, verdict)
		}
	}
}

func TestOverride(t *testing.T) {
	scanner := NewScanner()
	if o := Override(scanner.Scan("lovely weather")); o != nil {
		t.Fatalf("no-risk verdict should produce nil override, got %#v", o)
	}
	o := Override(scanner.Scan("I want to die"))
	if o == nil || o.Priority != "safety" || o.Message == "" {
		t.Fatalf("unexpected override: %#v", o)
	}
	if o.Hotlines.Primary.Name == "" || o.Hotlines.International.Website == "" {
		t.Fatalf("override missing hotline directory: %#v", o)
	}
}
