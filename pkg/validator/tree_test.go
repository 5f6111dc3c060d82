package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validatekit/pkg/validator"
)

func TestJoin(t *testing.T) {
	t.Run("joins messages with a single space", func(t *testing.T) {
		tree := validator.ErrorTree{
			"name": validator.Messages{"Name is required.", "The minimum length is 3."},
			"address": validator.ErrorTree{
				"street": validator.Messages{"The street name is required."},
			},
		}

		assert.Equal(t, validator.JoinedErrors{
			"name": validator.JoinedMessage("Name is required. The minimum length is 3."),
			"address": validator.JoinedErrors{
				"street": validator.JoinedMessage("The street name is required."),
			},
		}, validator.Join(tree))
	})

	t.Run("nil and empty trees join to nil", func(t *testing.T) {
		assert.Nil(t, validator.Join(nil))
		assert.Nil(t, validator.Join(validator.ErrorTree{}))
		assert.Nil(t, validator.Join(validator.ErrorTree{"a": validator.ErrorTree{}}))
	})

	t.Run("does not modify the tree", func(t *testing.T) {
		tree := validator.ErrorTree{"name": validator.Messages{"a.", "b."}}
		_ = validator.Join(tree)
		assert.Equal(t, validator.ErrorTree{"name": validator.Messages{"a.", "b."}}, tree)
	})
}

func TestErrorTree_Add(t *testing.T) {
	t.Run("creates intermediate nodes", func(t *testing.T) {
		tree := validator.ErrorTree{}
		tree.Add("address.person.age", "too young.")
		tree.Add("address.person.age", "required.")

		assert.Equal(t, validator.ErrorTree{
			"address": validator.ErrorTree{
				"person": validator.ErrorTree{
					"age": validator.Messages{"too young.", "required."},
				},
			},
		}, tree)
	})

	t.Run("keeps siblings", func(t *testing.T) {
		tree := validator.ErrorTree{}
		tree.Add("address.street", "a.")
		tree.Add("address.zip", "b.")
		tree.Add("name", "c.")

		assert.Equal(t, []string{"a."}, tree.Messages("address.street"))
		assert.Equal(t, []string{"b."}, tree.Messages("address.zip"))
		assert.Equal(t, []string{"c."}, tree.Messages("name"))
	})

	t.Run("replaces a leaf found on the way", func(t *testing.T) {
		tree := validator.ErrorTree{"address": validator.Messages{"old."}}
		tree.Add("address.street", "new.")

		assert.Equal(t, validator.ErrorTree{
			"address": validator.ErrorTree{"street": validator.Messages{"new."}},
		}, tree)
	})

	t.Run("ignores empty path", func(t *testing.T) {
		tree := validator.ErrorTree{}
		tree.Add("", "x")
		assert.True(t, tree.IsEmpty())
	})
}

func TestErrorTree_Accessors(t *testing.T) {
	tree := validator.ErrorTree{
		"name": validator.Messages{"required."},
		"address": validator.ErrorTree{
			"street": validator.Messages{"too short."},
		},
	}

	t.Run("messages", func(t *testing.T) {
		assert.Equal(t, []string{"required."}, tree.Messages("name"))
		assert.Equal(t, []string{"too short."}, tree.Messages("address.street"))
		assert.Nil(t, tree.Messages("address"))
		assert.Nil(t, tree.Messages("name.first"))
		assert.Nil(t, tree.Messages(""))
	})

	t.Run("subtree", func(t *testing.T) {
		sub, ok := tree.Subtree("address")
		require.True(t, ok)
		assert.Equal(t, validator.ErrorTree{"street": validator.Messages{"too short."}}, sub)

		_, ok = tree.Subtree("name")
		assert.False(t, ok)
	})

	t.Run("clone is deep", func(t *testing.T) {
		clone := tree.Clone()
		require.Equal(t, tree, clone)

		clone.Add("address.street", "changed.")
		clone["name"].(validator.Messages)[0] = "mutated."

		assert.Equal(t, []string{"too short."}, tree.Messages("address.street"))
		assert.Equal(t, []string{"required."}, tree.Messages("name"))
		assert.Nil(t, validator.ErrorTree(nil).Clone())
	})

	t.Run("joined get", func(t *testing.T) {
		joined := validator.Join(tree)

		msg, ok := joined.Get("address.street")
		require.True(t, ok)
		assert.Equal(t, "too short.", msg)

		_, ok = joined.Get("address")
		assert.False(t, ok)
		_, ok = joined.Get("missing.path")
		assert.False(t, ok)
	})
}
