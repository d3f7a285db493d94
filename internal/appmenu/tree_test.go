package appmenu

import (
	"testing"

	"fadel/internal/infrastructure/errors"
)

func sampleTree(t *testing.T) Tree {
	t.Helper()
	tree, err := NewTree(
		Submenu("", "File",
			Action("a", "A"),
			Submenu("list", "List", Action("x", "X")),
			Separator(),
			Action("b", "B"),
		),
		Native(RoleCopy, "Copy"),
	)
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}
	return tree
}

func actionIDs(entries []Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewTree_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewTree(
		Action("open", "Open"),
		Submenu("", "More", Action("open", "Open again")),
	)
	if !errors.IsDuplicateID(err) {
		t.Fatalf("Expected duplicate id error, got %v", err)
	}
}

func TestNewTree_RejectsAnonymousAction(t *testing.T) {
	_, err := NewTree(Action("", "Nameless"))
	if !errors.IsMenu(err) {
		t.Fatalf("Expected menu error, got %v", err)
	}
}

func TestNewTree_AllowsRepeatedLabels(t *testing.T) {
	if _, err := NewTree(Action("one", "Same"), Action("two", "Same")); err != nil {
		t.Fatalf("Expected repeated labels to be accepted, got %v", err)
	}
}

func TestTree_Actions(t *testing.T) {
	tree := sampleTree(t)

	got := actionIDs(tree.Actions())
	want := []string{"a", "x", "b"}
	if !equalStrings(got, want) {
		t.Errorf("Actions() = %v, want %v", got, want)
	}
}

func TestTree_Find(t *testing.T) {
	tree := sampleTree(t)

	entry, ok := tree.Find("x")
	if !ok || entry.Label != "X" {
		t.Errorf("Find(x) = %+v, %v", entry, ok)
	}

	list, ok := tree.Find("list")
	if !ok || list.Kind != KindSubmenu || len(list.Children) != 1 {
		t.Errorf("Find(list) = %+v, %v", list, ok)
	}

	if _, ok := tree.Find("missing"); ok {
		t.Error("Expected missing id not to be found")
	}
}

func TestTree_WithChildren(t *testing.T) {
	tree := sampleTree(t)

	next, err := tree.WithChildren("list", []Entry{Action("y", "Y"), Action("z", "Z")})
	if err != nil {
		t.Fatalf("WithChildren() error = %v", err)
	}

	if got := actionIDs(next.Actions()); !equalStrings(got, []string{"a", "y", "z", "b"}) {
		t.Errorf("Actions() after replace = %v", got)
	}

	// The original tree is unchanged
	if got := actionIDs(tree.Actions()); !equalStrings(got, []string{"a", "x", "b"}) {
		t.Errorf("Original tree mutated: %v", got)
	}
}

func TestTree_WithChildren_Errors(t *testing.T) {
	tree := sampleTree(t)

	if _, err := tree.WithChildren("missing", nil); !errors.IsMenu(err) {
		t.Errorf("Expected menu error for missing submenu, got %v", err)
	}

	if _, err := tree.WithChildren("a", nil); !errors.IsMenu(err) {
		t.Errorf("Expected menu error when target is an action, got %v", err)
	}

	if _, err := tree.WithChildren("list", []Entry{Action("a", "dup")}); !errors.IsDuplicateID(err) {
		t.Errorf("Expected duplicate id error, got %v", err)
	}
}

func TestTree_EntriesAreCopies(t *testing.T) {
	tree := sampleTree(t)

	entries := tree.Entries()
	entries[0].Children[0].Label = "changed"

	if entry, _ := tree.Find("a"); entry.Label != "A" {
		t.Errorf("Expected tree to be immune to caller mutation, got %q", entry.Label)
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindAction:    "action",
		KindSeparator: "separator",
		KindSubmenu:   "submenu",
		KindNative:    "native",
		Kind(42):      "kind(42)",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
