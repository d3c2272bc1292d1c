package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuery(t *testing.T) {
	t.Run("empty input yields empty query", func(t *testing.T) {
		assert.Empty(t, NewQuery())
	})

	t.Run("preserves input order", func(t *testing.T) {
		query := NewQuery(
			Param{"start_latitude", "37.7"},
			Param{"start_longitude", "-122.4"},
			Param{"product_id", "abc"},
		)
		assert.Equal(t, []Param{
			{"start_latitude", "37.7"},
			{"start_longitude", "-122.4"},
			{"product_id", "abc"},
		}, query)
	})

	t.Run("drops pairs with empty value", func(t *testing.T) {
		query := NewQuery(
			Param{"start_latitude", "37.7"},
			Param{"product_id", ""},
		)
		assert.Equal(t, []Param{{"start_latitude", "37.7"}}, query)
	})

	t.Run("drops pairs with empty name", func(t *testing.T) {
		query := NewQuery(
			Param{"", "37.7"},
			Param{"limit", "10"},
		)
		assert.Equal(t, []Param{{"limit", "10"}}, query)
	})

	t.Run("same input always yields same output", func(t *testing.T) {
		pairs := []Param{
			{"a", "1"},
			{"", "x"},
			{"b", ""},
			{"c", "3"},
		}
		first := NewQuery(pairs...)
		second := NewQuery(pairs...)
		assert.Equal(t, first, second)
		assert.Equal(t, []Param{{"a", "1"}, {"c", "3"}}, first)
	})
}
