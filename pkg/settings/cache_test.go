package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFallsThroughToDefaults(t *testing.T) {
	c := NewCache(nil)
	assert.Equal(t, "Maranatha Prayer House", c.Get("site", "title"))
	assert.Equal(t, "", c.Get("social", "facebook"))
	assert.Equal(t, "", c.Get("unknown", "key"))
}

func TestDatabaseLayerOverridesDefaults(t *testing.T) {
	c := NewCache(nil)
	c.Set("site", "title", "Grace Chapel")
	assert.Equal(t, "Grace Chapel", c.Get("site", "title"))

	c.Invalidate("site")
	assert.Equal(t, "Maranatha Prayer House", c.Get("site", "title"))
}

func TestEnvOverridesEverything(t *testing.T) {
	t.Setenv("SITE_TITLE", "Pinned Title")

	c := NewCache(nil)
	c.Set("site", "title", "Grace Chapel")

	assert.Equal(t, "Pinned Title", c.Get("site", "title"))
	assert.True(t, c.IsEnvOverridden("site", "title"))
}

func TestSectionMergesAllLayers(t *testing.T) {
	t.Setenv("SITE_CONTACT_EMAIL", "env@example.org")

	c := NewCache(nil)
	c.Set("contact", "phone", "+1 555 0100")

	section := c.Section("contact")
	assert.Equal(t, "env@example.org", section["email"])
	assert.Equal(t, "+1 555 0100", section["phone"])
	assert.Contains(t, section, "address")
}

func TestAllIncludesEverySection(t *testing.T) {
	c := NewCache(nil)
	c.Set("custom", "greeting", "hello")

	all := c.All()
	assert.Contains(t, all, "site")
	assert.Contains(t, all, "contact")
	assert.Contains(t, all, "social")
	assert.Contains(t, all, "custom")
	assert.Equal(t, "hello", all["custom"]["greeting"])
}
