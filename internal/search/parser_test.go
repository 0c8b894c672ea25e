package search

import (
	"reflect"
	"testing"
)

func TestParseSingleTerms(t *testing.T) {
	two := 2

	tests := []struct {
		name  string
		input string
		want  Node
	}{
		{name: "bare text", input: "dog", want: TextNode{Text: "dog"}},
		{name: "quoted text", input: `"two words"`, want: TextNode{Text: "two words"}},
		{name: "deck", input: "deck:Japanese", want: DeckNode{Pattern: "Japanese"}},
		{name: "quoted deck value", input: `deck:"My Deck"`, want: DeckNode{Pattern: "My Deck"}},
		{name: "tag", input: "tag:vocab*", want: TagNode{Tag: "vocab*"}},
		{name: "card ordinal", input: "card:3", want: TemplateOrdinalNode{Ord: 2}},
		{name: "card name", input: "card:Cloze", want: TemplateNameNode{Name: "Cloze"}},
		{name: "note type", input: "note:Basic", want: NoteTypeNode{Name: "Basic"}},
		{name: "note type id", input: "mid:1234", want: NoteTypeIDNode{ID: 1234}},
		{name: "note ids", input: "nid:1,2,3", want: NoteIDsNode{IDs: "1,2,3"}},
		{name: "card ids", input: "cid:77", want: CardIDsNode{IDs: "77"}},
		{name: "added", input: "added:7", want: AddedInDaysNode{Days: 7}},
		{name: "rated", input: "rated:7", want: RatedNode{Days: 7}},
		{name: "rated with ease", input: "rated:2:2", want: RatedNode{Days: 2, Ease: &two}},
		{name: "state", input: "is:due", want: StateNode{Kind: StateDue}},
		{name: "flag", input: "flag:5", want: FlagNode{Flag: 5}},
		{name: "field search", input: "Front:cat", want: SingleFieldNode{Field: "Front", Text: "cat"}},
		{name: "prop due", input: "prop:due=-1", want: PropertyNode{Op: "=", Kind: PropDue{Days: -1}}},
		{name: "prop interval", input: "prop:ivl>=21", want: PropertyNode{Op: ">=", Kind: PropInterval{Interval: 21}}},
		{name: "prop ease", input: "prop:ease<2.5", want: PropertyNode{Op: "<", Kind: PropEase{Ease: 2.5}}},
		{name: "dupe", input: `dupe:"123,some text"`, want: DupesNode{NoteTypeID: 123, Text: "some text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got.Children) != 1 {
				t.Fatalf("expected 1 child, got %d", len(got.Children))
			}
			if !reflect.DeepEqual(got.Children[0], tt.want) {
				t.Errorf("node = %#v, want %#v", got.Children[0], tt.want)
			}
		})
	}
}

func TestParseConnectorAlternation(t *testing.T) {
	got, err := Parse("tag:a tag:b or -tag:c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := GroupNode{Children: []Node{
		TagNode{Tag: "a"},
		AndNode{},
		TagNode{Tag: "b"},
		OrNode{},
		NotNode{Child: TagNode{Tag: "c"}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %#v, want %#v", got, want)
	}
}

func TestParseNestedGroups(t *testing.T) {
	got, err := Parse("deck:x (tag:a or tag:b)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := GroupNode{Children: []Node{
		DeckNode{Pattern: "x"},
		AndNode{},
		GroupNode{Children: []Node{
			TagNode{Tag: "a"},
			OrNode{},
			TagNode{Tag: "b"},
		}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %#v, want %#v", got, want)
	}
}

func TestParseExplicitAndKeyword(t *testing.T) {
	got, err := Parse("tag:a and tag:b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := GroupNode{Children: []Node{
		TagNode{Tag: "a"},
		AndNode{},
		TagNode{Tag: "b"},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree = %#v, want %#v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "leading or", input: "or tag:a"},
		{name: "trailing and", input: "tag:a and"},
		{name: "double connector", input: "tag:a or or tag:b"},
		{name: "unclosed group", input: "(tag:a"},
		{name: "unmatched close", input: "tag:a)"},
		{name: "bad flag", input: "flag:9"},
		{name: "bad state", input: "is:sideways"},
		{name: "bad rated ease", input: "rated:1:9"},
		{name: "nid with letters", input: "nid:1,x"},
		{name: "card zero ordinal", input: "card:0"},
		{name: "prop without operator", input: "prop:ivl"},
		{name: "prop unknown name", input: "prop:bogus>1"},
		{name: "dupe without comma", input: "dupe:123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}
