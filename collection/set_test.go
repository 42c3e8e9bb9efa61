package collection_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/go-collect/collection"
)

// ─────────────────────────────────────────────────────────────────────────────
// Includes
// ─────────────────────────────────────────────────────────────────────────────

func TestIncludesIsLoose(t *testing.T) {
	c := collection.New[any](1, "b")
	if !c.Includes("1") {
		t.Fatal(`Includes("1") should match 1 loosely`)
	}
	if !c.Includes("b") {
		t.Fatal("Includes should find exact strings")
	}
	if c.Includes("c") {
		t.Fatal("Includes found a value that is not there")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Intersect / Diff
// ─────────────────────────────────────────────────────────────────────────────

func TestIntersectPreservesLeftKeys(t *testing.T) {
	left := collection.FromEntries(
		collection.Entry[any]{Key: "x", Value: 1},
		collection.Entry[any]{Key: "y", Value: 2},
		collection.Entry[any]{Key: "z", Value: 3},
	)
	right := collection.New[any]("3", 1) // loose matches for 1 and 3
	out := left.Intersect(right)
	assertSlice(t, out.All(), []any{1, 3})
	keys := out.Keys()
	if keys[0] != "x" || keys[1] != "z" {
		t.Fatalf("Intersect must preserve left-hand keys: got %v", keys)
	}
}

func TestDiffLooseWithDenseKeys(t *testing.T) {
	out := collection.New[any](1, 2, 3).Diff(collection.New[any]("2"))
	assertSlice(t, out.All(), []any{1, 3})
	assertDenseKeys(t, out.Keys(), 2)
}

func TestDiffWithComparator(t *testing.T) {
	caseless := func(a, b string) bool { return strings.EqualFold(a, b) }
	out := collection.New("Ada", "Bob").DiffWith(collection.New("ADA"), caseless)
	assertSlice(t, out.All(), []string{"Bob"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Concat / Push
// ─────────────────────────────────────────────────────────────────────────────

func TestConcatSplicesAndAppends(t *testing.T) {
	out, err := ints(1).Concat(
		ints(2, 3),    // collection → spliced
		[]int{4, 5},   // slice → spliced
		6,             // scalar → appended
	)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, out.All(), []int{1, 2, 3, 4, 5, 6})
	assertDenseKeys(t, out.Keys(), 6)
}

func TestConcatInvalidKind(t *testing.T) {
	_, err := ints(1).Concat("not an int")
	if !errors.Is(err, collection.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestConcatResetsMapKeys(t *testing.T) {
	m := collection.FromEntries(collection.Entry[int]{Key: "a", Value: 1})
	out, err := m.Concat(2)
	if err != nil {
		t.Fatal(err)
	}
	assertDenseKeys(t, out.Keys(), 2)
}

func TestPush(t *testing.T) {
	c := ints(1)
	out := c.Push(2, 3)
	assertSlice(t, out.All(), []int{1, 2, 3})
	assertSlice(t, c.All(), []int{1}) // original untouched
}
