package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attriflow/backend/internal/domain"
)

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, len(builtinTemplates()), registry.Size())
}

func TestRegistry_Get(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	tmpl, ok := registry.Get("Wade Drains")
	require.True(t, ok)
	assert.Equal(t, "Wade Drains", tmpl.ManufacturerName)
	assert.Equal(t, domain.TemplateCategoryDrains, tmpl.Category)

	_, ok = registry.Get("Nonexistent")
	assert.False(t, ok)
}

func TestRegistry_NamesInRegistryOrder(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	names := registry.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "Wade Drains", names[0])

	want := make([]string, 0, len(builtinTemplates()))
	for _, tmpl := range builtinTemplates() {
		want = append(want, tmpl.ManufacturerName)
	}
	assert.Equal(t, want, names)
}

func TestRegistry_AllManufacturersRegistered(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	drains := []string{"Wade Drains", "Zurn", "Watts", "Josam", "MIFAB", "Jay R. Smith"}
	faucets := []string{"American Standard", "Kohler", "Moen", "Delta", "Sloan", "Chicago Faucets"}

	for _, name := range drains {
		tmpl, ok := registry.Get(name)
		require.True(t, ok, "no registered template for %s", name)
		assert.Equal(t, domain.TemplateCategoryDrains, tmpl.Category, name)
	}
	for _, name := range faucets {
		tmpl, ok := registry.Get(name)
		require.True(t, ok, "no registered template for %s", name)
		assert.Equal(t, domain.TemplateCategoryFaucets, tmpl.Category, name)
	}

	assert.Equal(t, len(drains)+len(faucets), registry.Size())
}

func TestRegistry_DefaultForCategory(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	drains := registry.DefaultForCategory(domain.TemplateCategoryDrains)
	assert.Equal(t, "Wade Drains", drains.ManufacturerName)

	faucets := registry.DefaultForCategory(domain.TemplateCategoryFaucets)
	assert.Equal(t, "American Standard", faucets.ManufacturerName)

	general := registry.DefaultForCategory(domain.TemplateCategoryGeneral)
	assert.Equal(t, "Generic", general.ManufacturerName)
}

func TestRegistry_Default(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	tmpl := registry.Default()
	assert.Equal(t, "Generic", tmpl.ManufacturerName)
	assert.Equal(t, domain.TemplateCategoryGeneral, tmpl.Category)
}

func TestBuildRegistry_RejectsDuplicates(t *testing.T) {
	list := builtinTemplates()
	list = append(list, list[0])

	_, err := buildRegistry(list)
	assert.Error(t, err)
}

func TestBuildRegistry_RejectsInvalidTemplate(t *testing.T) {
	list := builtinTemplates()
	list[0].ManufacturerName = ""

	_, err := buildRegistry(list)
	assert.Error(t, err)
}

func TestBuiltinTemplates_AllValid(t *testing.T) {
	for _, tmpl := range builtinTemplates() {
		assert.NoError(t, tmpl.Validate(), tmpl.ManufacturerName)
	}
}
