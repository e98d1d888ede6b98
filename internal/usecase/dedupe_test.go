package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attriflow/backend/internal/domain"
)

func TestDeduplicateAttributes_FirstSeenWins(t *testing.T) {
	attrs := []domain.Attribute{
		{Name: "Options Suffix: -AR", Value: "Acid resistant coating"},
		{Name: "Outlet Type Suffix: AR", Value: "Acid resistant interior"},
		{Name: "Options Suffix: -7", Value: "Trap primer tapping"},
		{Name: "Manufacturer", Value: "Wade Drains"},
		{Name: "Options Suffix: -7", Value: "Duplicate tapping"},
	}

	result := DeduplicateAttributes(attrs)
	require.Len(t, result, 3)
	assert.Equal(t, "Options Suffix: -AR", result[0].Name)
	assert.Equal(t, "Acid resistant coating", result[0].Value)
	assert.Equal(t, "Options Suffix: -7", result[1].Name)
	assert.Equal(t, "Trap primer tapping", result[1].Value)
	assert.Equal(t, "Manufacturer", result[2].Name)
}

func TestDeduplicateAttributes_DashAndBareCodesCollide(t *testing.T) {
	attrs := []domain.Attribute{
		{Name: "Pipe Size Suffix: 2", Value: "2 inch outlet"},
		{Name: "Options Suffix: -2", Value: "2 inch outlet again"},
	}

	result := DeduplicateAttributes(attrs)
	require.Len(t, result, 1)
	assert.Equal(t, "Pipe Size Suffix: 2", result[0].Name)
}

func TestDeduplicateAttributes_CodelessAlwaysKept(t *testing.T) {
	attrs := []domain.Attribute{
		{Name: "Material", Value: "Cast Iron"},
		{Name: "Material", Value: "Nickel Bronze"},
		{Name: "Division", Value: "Plumbing"},
	}

	result := DeduplicateAttributes(attrs)
	assert.Equal(t, attrs, result)
}

func TestDeduplicateAttributes_PreservesOrder(t *testing.T) {
	attrs := []domain.Attribute{
		{Name: "Product Number", Value: "FD-100"},
		{Name: "Options Suffix: -5", Value: "Sediment bucket"},
		{Name: "Product Name", Value: "Floor Drain"},
		{Name: "Options Suffix: -6", Value: "Vandal proof"},
	}

	result := DeduplicateAttributes(attrs)
	assert.Equal(t, attrs, result)
}

func TestDeduplicateAttributes_Idempotent(t *testing.T) {
	attrs := []domain.Attribute{
		{Name: "Options Suffix: -AR", Value: "a"},
		{Name: "Options Suffix: -AR", Value: "b"},
		{Name: "Flow Rate Capacity", Value: "40 GPM"},
	}

	once := DeduplicateAttributes(attrs)
	twice := DeduplicateAttributes(once)
	assert.Equal(t, once, twice)
}

func TestDeduplicateAttributes_Empty(t *testing.T) {
	assert.Empty(t, DeduplicateAttributes(nil))
}
