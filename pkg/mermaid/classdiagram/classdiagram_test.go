package classdiagram

import (
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

func TestRenderBasic(t *testing.T) {
	b := NewBuilder(Config{})
	animal, err := b.AddNode(NewNode().Label("Animal"))
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	dog, err := b.AddNode(NewNode().Label("Dog"))
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := b.AddEdge(NewEdge().Source(animal).Destination(dog).Arrow(ArrowInheritance)); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	want := "---\n" +
		"config:\n" +
		"  class:\n" +
		"    hideEmptyMembersBox: false\n" +
		"---\n" +
		"classDiagram\n" +
		"  direction LR\n" +
		"class v0[\"Animal\"] { }\n" +
		"class v1[\"Dog\"] { }\n" +
		"v0 --|> v1\n"
	if got := b.Build().Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderMembers(t *testing.T) {
	b := NewBuilder(Config{HideEmptyMembersBox: true, Title: "Zoo"})
	if _, err := b.AddNode(NewNode().Label("Dog").Member("+name string").Member("bark()")); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	got := b.Build().Render()

	wantBlock := "class v0[\"Dog\"] {\n" +
		"  +name string\n" +
		"  bark()\n" +
		"}\n"
	if !strings.Contains(got, wantBlock) {
		t.Errorf("Render() = %q, want member block %q", got, wantBlock)
	}
	if !strings.Contains(got, "    hideEmptyMembersBox: true\n") {
		t.Errorf("Render() = %q, want hideEmptyMembersBox: true", got)
	}
	if !strings.Contains(got, "title: Zoo\n") {
		t.Errorf("Render() = %q, want title line", got)
	}
}

func TestRenderDirection(t *testing.T) {
	b := NewBuilder(Config{Direction: mermaid.DirectionTB})
	got := b.Build().Render()
	if !strings.Contains(got, "classDiagram\n  direction TB\n") {
		t.Errorf("Render() = %q, want TB direction line", got)
	}
}

func TestRenderEdgeLabel(t *testing.T) {
	b := NewBuilder(Config{})
	owner, _ := b.AddNode(NewNode().Label("Owner"))
	pet, _ := b.AddNode(NewNode().Label("Pet"))
	if err := b.AddEdge(NewEdge().Source(owner).Destination(pet).Arrow(ArrowAggregation).Label("keeps")); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	got := b.Build().Render()
	if !strings.Contains(got, "v0 --o v1 : \"keeps\"\n") {
		t.Errorf("Render() = %q, want labeled aggregation edge", got)
	}
}

func TestValidation(t *testing.T) {
	b := NewBuilder(Config{})
	var missing *mermaid.MissingFieldError

	if _, err := b.AddNode(NewNode()); !errors.As(err, &missing) || missing.Field != "label" {
		t.Fatalf("AddNode error = %v, want MissingFieldError{label}", err)
	}

	id, _ := b.AddNode(NewNode().Label("A"))
	if err := b.AddEdge(NewEdge().Source(id).Destination(id)); !errors.As(err, &missing) || missing.Field != "relationship" {
		t.Fatalf("AddEdge error = %v, want MissingFieldError{relationship}", err)
	}

	var unknown *mermaid.UnknownNodeError
	err := b.AddEdge(NewEdge().Source(id).Destination(5).Arrow(ArrowAssociation))
	if !errors.As(err, &unknown) || unknown.ID != 5 {
		t.Fatalf("AddEdge error = %v, want UnknownNodeError{5}", err)
	}
}

func TestArrowTokens(t *testing.T) {
	want := map[Arrow]string{
		ArrowAssociation: "-->",
		ArrowInheritance: "--|>",
		ArrowAggregation: "--o",
		ArrowComposition: "--*",
	}
	seen := make(map[string]Arrow)
	for _, a := range Arrows() {
		tok := a.Token()
		if tok != want[a] {
			t.Errorf("%s.Token() = %q, want %q", a, tok, want[a])
		}
		if prev, dup := seen[tok]; dup {
			t.Errorf("arrows %s and %s share token %q", prev, a, tok)
		}
		seen[tok] = a

		parsed, err := ParseArrow(string(a))
		if err != nil {
			t.Errorf("ParseArrow(%q): %v", a, err)
		} else if parsed != a {
			t.Errorf("ParseArrow(%q) = %q", a, parsed)
		}
	}
	if _, err := ParseArrow("friendship"); err == nil {
		t.Error("ParseArrow(friendship) succeeded, want error")
	}
}
