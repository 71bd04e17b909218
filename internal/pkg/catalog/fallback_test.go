package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackPlansShape(t *testing.T) {
	plans := FallbackPlans()
	require.Len(t, plans, 4)

	for _, plan := range plans {
		assert.NotEmpty(t, plan.Name)
		assert.NotEmpty(t, plan.InterestRate)
		assert.NotEmpty(t, plan.Term)
		assert.NotEmpty(t, plan.Benefits)
		assert.NotEmpty(t, plan.Description)
		assert.GreaterOrEqual(t, plan.MinContribution, 0)
		assert.LessOrEqual(t, plan.MinContribution, plan.MaxContribution,
			"plan %q has min above max", plan.Name)
	}
}

func TestFallbackPlansValues(t *testing.T) {
	expected := []struct {
		id   uint
		name string
		rate string
		term string
		min  int
		max  int
	}{
		{1, "Savings Plan", "3.5%", "12 months", 100, 5000},
		{2, "Premium Plan", "5.2%", "24 months", 500, 10000},
		{3, "Retirement Plan", "6.8%", "60 months", 200, 15000},
		{4, "Education Plan", "4.7%", "36 months", 150, 8000},
	}

	plans := FallbackPlans()
	require.Len(t, plans, len(expected))

	for i, want := range expected {
		assert.Equal(t, want.id, plans[i].ID)
		assert.Equal(t, want.name, plans[i].Name)
		assert.Equal(t, want.rate, plans[i].InterestRate)
		assert.Equal(t, want.term, plans[i].Term)
		assert.Equal(t, want.min, plans[i].MinContribution)
		assert.Equal(t, want.max, plans[i].MaxContribution)
	}
}

func TestFallbackPlanLookup(t *testing.T) {
	plan, ok := FallbackPlan(3)
	require.True(t, ok)
	assert.Equal(t, "Retirement Plan", plan.Name)

	_, ok = FallbackPlan(999)
	assert.False(t, ok)
}

func TestFallbackPlanReturnsCopy(t *testing.T) {
	plan, ok := FallbackPlan(1)
	require.True(t, ok)

	plan.Name = "Mutated"

	again, ok := FallbackPlan(1)
	require.True(t, ok)
	assert.Equal(t, "Savings Plan", again.Name)
}
