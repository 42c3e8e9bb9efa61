package collection_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-collect/collection"
	"github.com/hasbyte1/go-collect/record"
)

func pages() *collection.Collection[record.Record] {
	return collection.New(
		record.Record{"id": 1, "parent": nil},
		record.Record{"id": 2, "parent": nil},
		record.Record{"id": 3, "parent": 1},
	)
}

func childrenOf(t *testing.T, node record.Record) *collection.Collection[record.Record] {
	t.Helper()
	kids, ok := node["children"].(*collection.Collection[record.Record])
	if !ok {
		t.Fatalf("node %v has no children collection", node["id"])
	}
	return kids
}

func TestToTreeSingleRoot(t *testing.T) {
	tree, err := collection.ToTree(pages(), "id", "parent")
	if err != nil {
		t.Fatal(err)
	}
	// nil is the only parent value that never occurs as an id, so the two
	// top-level pages are the root's children.
	if tree.Count() != 2 {
		t.Fatalf("root children: got %d want 2", tree.Count())
	}
	node1, _ := tree.First()
	if node1["id"] != 1 {
		t.Fatalf("first root child: got id %v", node1["id"])
	}
	kids := childrenOf(t, node1)
	if kids.Count() != 1 {
		t.Fatalf("node 1 children: got %d want 1", kids.Count())
	}
	leaf, _ := kids.First()
	if leaf["id"] != 3 {
		t.Fatalf("node 1 child: got id %v", leaf["id"])
	}
	if childrenOf(t, leaf).IsNotEmpty() {
		t.Fatal("leaf should carry an empty children collection")
	}
}

func TestToTreeDoesNotMutateInput(t *testing.T) {
	in := pages()
	if _, err := collection.ToTree(in, "id", "parent"); err != nil {
		t.Fatal(err)
	}
	first, _ := in.First()
	if _, decorated := first["children"]; decorated {
		t.Fatal("ToTree must decorate copies, not the input records")
	}
}

func TestToTreeMultipleRoots(t *testing.T) {
	c := collection.New(
		record.Record{"id": 1, "parent": nil},
		record.Record{"id": 2, "parent": "legacy"},
		record.Record{"id": 3, "parent": 1},
	)
	// Both nil and "legacy" are parent values with no matching id, so the
	// result is a forest: one tree per inferred root, concatenated.
	forest, err := collection.ToTree(c, "id", "parent")
	if err != nil {
		t.Fatal(err)
	}
	if forest.Count() != 2 {
		t.Fatalf("forest: got %d top-level nodes want 2", forest.Count())
	}
}

func TestToTreeNoRoot(t *testing.T) {
	cyclic := collection.New(
		record.Record{"id": 1, "parent": 2},
		record.Record{"id": 2, "parent": 1},
	)
	_, err := collection.ToTree(cyclic, "id", "parent")
	if !errors.Is(err, collection.ErrNoRoot) {
		t.Fatalf("want ErrNoRoot, got %v", err)
	}
}

func TestToTreeCustomChildrenField(t *testing.T) {
	tree, err := collection.ToTree(pages(), "id", "parent", "nodes")
	if err != nil {
		t.Fatal(err)
	}
	node, _ := tree.First()
	if _, ok := node["nodes"].(*collection.Collection[record.Record]); !ok {
		t.Fatal("children should live under the custom field name")
	}
	if _, ok := node["children"]; ok {
		t.Fatal("default children field should not be set")
	}
}

func TestToTreeLooseParentMatching(t *testing.T) {
	// Parent references by numeric string still link to int ids.
	c := collection.New(
		record.Record{"id": 1, "parent": nil},
		record.Record{"id": 2, "parent": "1"},
	)
	tree, err := collection.ToTree(c, "id", "parent")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Count() != 1 {
		t.Fatalf("roots: got %d want 1", tree.Count())
	}
	root, _ := tree.First()
	if childrenOf(t, root).Count() != 1 {
		t.Fatal("numeric-string parent should match int id loosely")
	}
}

func TestToTreeMissingParentFieldIsRoot(t *testing.T) {
	c := collection.New(
		record.Record{"id": 1}, // no parent field at all
		record.Record{"id": 2, "parent": 1},
	)
	tree, err := collection.ToTree(c, "id", "parent")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Count() != 1 {
		t.Fatalf("roots: got %d want 1", tree.Count())
	}
}

func TestGroupByRecursiveExplicitRoot(t *testing.T) {
	tree, err := collection.GroupByRecursive(pages(), "id", "parent", "children", 1)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Count() != 1 {
		t.Fatalf("direct children of 1: got %d", tree.Count())
	}
	node, _ := tree.First()
	if node["id"] != 3 {
		t.Fatalf("child of 1: got id %v", node["id"])
	}
}
