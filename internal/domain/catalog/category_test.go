package catalog

import (
	"testing"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func name(az string) shared.LocalizedText {
	return shared.LocalizedText{Az: az}
}

func TestNewRootCategory(t *testing.T) {
	t.Run("creates root category at level 1", func(t *testing.T) {
		category, err := NewRootCategory(name("Elektronika"))
		require.NoError(t, err)
		require.NotNil(t, category)

		assert.Nil(t, category.ParentID)
		assert.Equal(t, 1, category.Level)
		assert.True(t, category.IsActive)
		assert.True(t, category.IsRoot())
		assert.False(t, category.IsProductHolder)
	})

	t.Run("fails without base language name", func(t *testing.T) {
		_, err := NewRootCategory(shared.LocalizedText{En: "Electronics"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base language")
	})
}

func TestNewChildCategory(t *testing.T) {
	parent, err := NewRootCategory(name("Elektronika"))
	require.NoError(t, err)
	parent.ID = 1

	t.Run("creates child one level below parent", func(t *testing.T) {
		child, err := NewChildCategory(name("Telefonlar"), parent)
		require.NoError(t, err)
		require.NotNil(t, child.ParentID)

		assert.Equal(t, parent.ID, *child.ParentID)
		assert.Equal(t, 2, child.Level)
		assert.False(t, child.IsRoot())
	})

	t.Run("fails with nil parent", func(t *testing.T) {
		_, err := NewChildCategory(name("Telefonlar"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("fails under inactive parent", func(t *testing.T) {
		inactive := &Category{Name: name("Arxiv"), IsActive: false, Level: 1}
		inactive.ID = 2

		_, err := NewChildCategory(name("Köhnə"), inactive)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("respects max depth", func(t *testing.T) {
		current := parent
		for level := 2; level <= MaxCategoryDepth; level++ {
			next, err := NewChildCategory(name("Alt"), current)
			require.NoError(t, err)
			next.ID = int64(level)
			assert.Equal(t, level, next.Level)
			current = next
		}

		_, err := NewChildCategory(name("Çox dərin"), current)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "depth")
	})
}

func TestCategoryPlaceUnder(t *testing.T) {
	root, _ := NewRootCategory(name("Elektronika"))
	root.ID = 1

	child, _ := NewChildCategory(name("Telefonlar"), root)
	child.ID = 2

	t.Run("moves under a new parent", func(t *testing.T) {
		other, _ := NewRootCategory(name("Məişət"))
		other.ID = 3
		other.Level = 1

		child.PlaceUnder(other)
		require.NotNil(t, child.ParentID)
		assert.Equal(t, other.ID, *child.ParentID)
		assert.Equal(t, 2, child.Level)
	})

	t.Run("promotes to root when parent is nil", func(t *testing.T) {
		child.PlaceUnder(nil)
		assert.Nil(t, child.ParentID)
		assert.Equal(t, 1, child.Level)
		assert.True(t, child.IsRoot())
	})
}

func TestCategoryRename(t *testing.T) {
	category, _ := NewRootCategory(name("Elektronika"))

	t.Run("replaces the name record", func(t *testing.T) {
		err := category.Rename(shared.LocalizedText{Az: "Texnika", En: "Appliances"})
		require.NoError(t, err)
		assert.Equal(t, "Texnika", category.Name.Az)
		assert.Equal(t, "Appliances", category.Name.En)
	})

	t.Run("rejects a name without base language", func(t *testing.T) {
		err := category.Rename(shared.LocalizedText{Ru: "Техника"})
		require.Error(t, err)
		assert.Equal(t, "Texnika", category.Name.Az)
	})
}
