package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageResult(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		result := NewPageResult(nil, 3, 0, 2)
		assert.Equal(t, 2, result.TotalPages)
		assert.Equal(t, int64(3), result.TotalElements)
		assert.Equal(t, 0, result.Page)
	})

	t.Run("exact division", func(t *testing.T) {
		result := NewPageResult(nil, 10, 1, 5)
		assert.Equal(t, 2, result.TotalPages)
	})

	t.Run("single partial page", func(t *testing.T) {
		result := NewPageResult(nil, 5, 0, 10)
		assert.Equal(t, 1, result.TotalPages)
	})

	t.Run("empty dataset", func(t *testing.T) {
		result := NewPageResult(nil, 0, 0, 10)
		assert.Equal(t, 0, result.TotalPages)
		assert.Equal(t, int64(0), result.TotalElements)
	})

	t.Run("page index passes through beyond the last page", func(t *testing.T) {
		result := NewPageResult(nil, 5, 99, 10)
		assert.Equal(t, 99, result.Page)
		assert.Equal(t, 1, result.TotalPages)
		assert.Equal(t, int64(5), result.TotalElements)
	})
}
