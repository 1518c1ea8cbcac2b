package catalog

import (
	"testing"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cat(id int64, parentID *int64, level int) Category {
	c := Category{
		Name:     shared.LocalizedText{Az: "Kateqoriya"},
		IsActive: true,
		ParentID: parentID,
		Level:    level,
	}
	c.ID = id
	return c
}

func ptr(v int64) *int64 { return &v }

func countNodes(nodes []*CategoryTreeNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + countNodes(n.Children)
	}
	return total
}

func TestBuildCategoryTree(t *testing.T) {
	t.Run("builds nested tree from flat input", func(t *testing.T) {
		flat := []Category{
			cat(1, nil, 1),
			cat(2, ptr(1), 2),
			cat(3, ptr(1), 2),
			cat(4, ptr(2), 3),
			cat(5, nil, 1),
		}

		tree := BuildCategoryTree(flat)
		require.Len(t, tree, 2)

		assert.Equal(t, int64(1), tree[0].ID)
		assert.Equal(t, int64(5), tree[1].ID)

		require.Len(t, tree[0].Children, 2)
		assert.Equal(t, int64(2), tree[0].Children[0].ID)
		assert.Equal(t, int64(3), tree[0].Children[1].ID)

		require.Len(t, tree[0].Children[0].Children, 1)
		assert.Equal(t, int64(4), tree[0].Children[0].Children[0].ID)
	})

	t.Run("every self-consistent input node appears exactly once", func(t *testing.T) {
		flat := []Category{
			cat(1, nil, 1),
			cat(2, ptr(1), 2),
			cat(3, ptr(2), 3),
			cat(4, ptr(3), 4),
			cat(5, ptr(4), 5),
		}

		tree := BuildCategoryTree(flat)
		assert.Equal(t, len(flat), countNodes(tree))
	})

	t.Run("omits nodes whose parent is absent from the input", func(t *testing.T) {
		flat := []Category{
			cat(1, nil, 1),
			cat(7, ptr(99), 2), // parent 99 was filtered out
		}

		tree := BuildCategoryTree(flat)
		require.Len(t, tree, 1)
		assert.Equal(t, int64(1), tree[0].ID)
		assert.Empty(t, tree[0].Children)
		assert.Equal(t, 1, countNodes(tree))
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		flat := []Category{cat(1, nil, 1), cat(2, ptr(1), 2)}

		tree := BuildCategoryTree(flat)
		tree[0].Children[0].Name = shared.LocalizedText{Az: "Dəyişdirilib"}

		assert.Equal(t, "Kateqoriya", flat[1].Name.Az)
	})

	t.Run("deterministic sibling order follows input order", func(t *testing.T) {
		flat := []Category{
			cat(1, nil, 1),
			cat(3, ptr(1), 2),
			cat(2, ptr(1), 2),
		}

		tree := BuildCategoryTree(flat)
		require.Len(t, tree[0].Children, 2)
		assert.Equal(t, int64(3), tree[0].Children[0].ID)
		assert.Equal(t, int64(2), tree[0].Children[1].ID)
	})

	t.Run("empty input yields empty tree", func(t *testing.T) {
		assert.Empty(t, BuildCategoryTree(nil))
	})
}

func TestBuildCategoryTreeFunc(t *testing.T) {
	t.Run("custom root selector", func(t *testing.T) {
		flat := []Category{
			cat(1, nil, 1),
			cat(2, ptr(1), 2),
			cat(3, ptr(2), 3),
		}

		// Treat level 2 as the top of the view.
		tree := BuildCategoryTreeFunc(flat, func(c *Category) bool {
			return c.Level == 2
		})

		require.Len(t, tree, 1)
		assert.Equal(t, int64(2), tree[0].ID)
		require.Len(t, tree[0].Children, 1)
		assert.Equal(t, int64(3), tree[0].Children[0].ID)
	})
}
