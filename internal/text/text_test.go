package text

import "testing"

func TestStripHTMLPreservingMediaFilenames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "tags removed", input: "<b>hello</b> world", want: "hello world"},
		{name: "img kept", input: `before<img src="pic.jpg">after`, want: "before pic.jpg after"},
		{name: "img single quotes", input: `<img src='a b.png'>`, want: " a b.png "},
		{name: "img unquoted", input: `<img src=x.gif>`, want: " x.gif "},
		{name: "sound kept", input: "[sound:clip.mp3]", want: " clip.mp3 "},
		{name: "entities", input: "a &amp; b", want: "a & b"},
		{name: "multiline tag", input: "a<div\nclass=\"x\">b</div>", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTMLPreservingMediaFilenames(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldChecksumDeterministic(t *testing.T) {
	a := FieldChecksum("foo")
	b := FieldChecksum("foo")
	if a != b {
		t.Errorf("checksum not reproducible: %d vs %d", a, b)
	}
	if FieldChecksum("foo") == FieldChecksum("bar") {
		t.Error("distinct inputs produced identical checksums")
	}
}

func TestChecksumAgreesAfterStripping(t *testing.T) {
	// Two raw texts that strip to the same plain text must collide.
	a := StripHTMLPreservingMediaFilenames("<b>cat</b>")
	b := StripHTMLPreservingMediaFilenames("<i>cat</i>")
	if FieldChecksum(a) != FieldChecksum(b) {
		t.Error("stripped-equal texts should share a checksum")
	}
}

func TestMatchesWildcard(t *testing.T) {
	tests := []struct {
		name    string
		cand    string
		pattern string
		want    bool
	}{
		{name: "exact", cand: "Default", pattern: "Default", want: true},
		{name: "case insensitive", cand: "Default", pattern: "default", want: true},
		{name: "no match", cand: "Default", pattern: "Other", want: false},
		{name: "star suffix", cand: "Japanese::Verbs", pattern: "Japanese*", want: true},
		{name: "star prefix", cand: "My Deck", pattern: "*deck", want: true},
		{name: "star middle", cand: "Card 12 front", pattern: "card*front", want: true},
		{name: "star alone", cand: "anything", pattern: "*", want: true},
		{name: "regex metachars literal", cand: "a.b", pattern: "a.b", want: true},
		{name: "dot not wildcard", cand: "axb", pattern: "a.b", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesWildcard(tt.cand, tt.pattern); got != tt.want {
				t.Errorf("MatchesWildcard(%q, %q) = %v, want %v", tt.cand, tt.pattern, got, tt.want)
			}
		})
	}
}
