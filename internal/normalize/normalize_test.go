package normalize

import "testing"

func TestTitleIsIdempotent(t *testing.T) {
	inputs := []string{
		"The Hobbit",
		"Café, The",
		"Attack on Titan [Digital]",
		"  multiple   spaces  ",
		"the the hobbit",
		"Kaiju No. 8",
		"",
	}
	for _, in := range inputs {
		once := Title(in)
		twice := Title(once)
		if once != twice {
			t.Fatalf("Title not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestTitleFoldsAccentsAndCase(t *testing.T) {
	if got := Title("Café"); got != "cafe" {
		t.Fatalf("expected accented folding to produce %q, got %q", "cafe", got)
	}
}

func TestTitleStripsBracketedGroups(t *testing.T) {
	got := Title("Attack on Titan [Digital] (Complete)")
	want := "attack on titan"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTitleStripsLeadingAndTrailingArticles(t *testing.T) {
	cases := map[string]string{
		"The Promised Neverland": "promised neverland",
		"Promised Neverland, The": "promised neverland",
		"A Silent Voice":          "silent voice",
	}
	for in, want := range cases {
		if got := Title(in); got != want {
			t.Fatalf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleStripsArticlesGluedByPunctuation(t *testing.T) {
	cases := map[string]string{
		"A-Team":         "team",
		"A.Silent.Voice": "silent voice",
	}
	for in, want := range cases {
		if got := Title(in); got != want {
			t.Fatalf("Title(%q) = %q, want %q", in, got, want)
		}
		if got, twice := Title(in), Title(Title(in)); got != twice {
			t.Fatalf("Title not idempotent for %q: once=%q twice=%q", in, got, twice)
		}
	}
}

func TestTitleCollapsesNonAlphanumericRuns(t *testing.T) {
	got := Title("One-Punch_Man!!")
	want := "one punch man"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
