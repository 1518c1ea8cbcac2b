package catalog

// CategoryTreeNode is a category with its resolved children, produced by
// BuildCategoryTree from a flat slice.
type CategoryTreeNode struct {
	Category
	Children []*CategoryTreeNode `json:"children"`
}

// BuildCategoryTree materializes a nested tree from an already-fetched,
// already-filtered flat slice of categories. Roots are the entries whose
// ParentID is nil.
//
// The input is never mutated. Provided the input is acyclic and
// self-consistent (every non-nil parent is present in the slice), every
// input category appears in the result exactly once, as a child of its
// declared parent. A category whose declared parent is absent from the
// input is omitted entirely: it is neither promoted to root nor attached
// anywhere else. Sibling order follows input order.
func BuildCategoryTree(categories []Category) []*CategoryTreeNode {
	return BuildCategoryTreeFunc(categories, func(c *Category) bool {
		return c.ParentID == nil
	})
}

// BuildCategoryTreeFunc is BuildCategoryTree with a caller-supplied root
// selector. Non-root categories still attach under their ParentID.
func BuildCategoryTreeFunc(categories []Category, isRoot func(c *Category) bool) []*CategoryTreeNode {
	nodes := make(map[int64]*CategoryTreeNode, len(categories))
	for i := range categories {
		nodes[categories[i].ID] = &CategoryTreeNode{
			Category: categories[i],
			Children: []*CategoryTreeNode{},
		}
	}

	roots := make([]*CategoryTreeNode, 0)
	for i := range categories {
		node := nodes[categories[i].ID]
		if isRoot(&categories[i]) {
			roots = append(roots, node)
			continue
		}
		if categories[i].ParentID == nil {
			continue
		}
		if parent, ok := nodes[*categories[i].ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
		// Parent absent from the input set: the node is orphaned and
		// stays out of every branch.
	}

	return roots
}
