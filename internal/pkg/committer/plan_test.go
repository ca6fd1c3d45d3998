package committer

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestCommitPlan_Empty(t *testing.T) {
	plan := NewPlan()

	assert.True(t, plan.IsEmpty())
	assert.Equal(t, 0, plan.Count())
	assert.Empty(t, plan.Mutations())
}

func TestCommitPlan_Add(t *testing.T) {
	plan := NewPlan()

	mut := spanner.Insert("products", []string{"product_id"}, []interface{}{"id-1"})
	plan.Add(mut)

	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 1, plan.Count())
	assert.Equal(t, []*spanner.Mutation{mut}, plan.Mutations())
}

func TestCommitPlan_AddIgnoresNil(t *testing.T) {
	plan := NewPlan()

	plan.Add(nil)

	assert.True(t, plan.IsEmpty())
	assert.Equal(t, 0, plan.Count())
}

func TestCommitPlan_AddMultiple(t *testing.T) {
	plan := NewPlan()

	plan.Add(spanner.Insert("products", []string{"product_id"}, []interface{}{"id-1"}))
	plan.Add(nil)
	plan.Add(spanner.Delete("products", spanner.Key{"id-2"}))

	assert.Equal(t, 2, plan.Count())
}
