package collection

import "github.com/hasbyte1/go-collect/record"

// ─────────────────────────────────────────────────────────────────────────────
// Tree layer
//
// Builds parent/child hierarchies out of flat record collections. Parent
// matching uses loose equality via a match template, so an id stored as
// int and referenced as float or numeric string still links up, and a
// record with no parent field at all counts as a child of the nil parent.
// ─────────────────────────────────────────────────────────────────────────────

// DefaultChildrenField is the synthetic field name ToTree attaches child
// collections under when the caller does not override it.
const DefaultChildrenField = "children"

// GroupByRecursive partitions the collection into the elements whose
// parentField value loosely equals parentValue (the direct children) versus
// the rest, then recursively resolves each direct child's own children from
// the remainder, attaching them under childrenField on a shallow copy of
// the node. The decorated direct children are returned with dense keys;
// leaves carry an empty child collection.
//
// The full remainder is re-scanned at every node, so the overall cost is
// O(n²) in the worst case, fine for the config-scale hierarchical data
// this targets. If inputs grow large, an index-by-parent pre-pass would
// drop it to O(n) without changing behavior.
func GroupByRecursive(c *Collection[record.Record], idField, parentField, childrenField string, parentValue any) (*Collection[record.Record], error) {
	direct, rest, err := c.Partition(record.Record{parentField: parentValue})
	if err != nil {
		return nil, err
	}
	out := make([]record.Record, 0, direct.Count())
	for _, el := range direct.values {
		id, _ := record.Lookup(el, idField)
		children, err := GroupByRecursive(rest, idField, parentField, childrenField, id)
		if err != nil {
			return nil, err
		}
		node := record.Clone(el)
		node[childrenField] = children
		out = append(out, node)
	}
	return fromValues(out), nil
}

// ToTree assembles the collection into a tree by inferring the root
// value(s): the distinct parentField values that never appear as an
// idField value (orphan parent references, typically nil for a true root).
//
// Exactly one inferred root recurses into a single tree. Several inferred
// roots produce one tree per root, concatenated into a collection of
// forests. Zero inferred roots fail with [ErrNoRoot]: the dataset is
// cyclic or fully self-referential, which a tree cannot represent.
//
// childrenField defaults to [DefaultChildrenField].
func ToTree(c *Collection[record.Record], idField, parentField string, childrenField ...string) (*Collection[record.Record], error) {
	child := DefaultChildrenField
	if len(childrenField) > 0 {
		child = childrenField[0]
	}

	lookup := func(field string) func(record.Record, Key) any {
		return func(r record.Record, _ Key) any {
			v, _ := record.Lookup(r, field)
			return v
		}
	}
	parents, err := c.Map(lookup(parentField))
	if err != nil {
		return nil, err
	}
	ids, err := c.Map(lookup(idField))
	if err != nil {
		return nil, err
	}
	roots := parents.Uniq().Diff(ids.Uniq())

	if roots.IsEmpty() {
		return nil, ErrNoRoot
	}
	forest := Empty[record.Record]()
	for _, root := range roots.values {
		tree, err := GroupByRecursive(c, idField, parentField, child, root)
		if err != nil {
			return nil, err
		}
		forest, err = forest.Concat(tree)
		if err != nil {
			return nil, err
		}
	}
	return forest, nil
}
