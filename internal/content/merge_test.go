package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_replacesOnlyNamedField(t *testing.T) {
	got, err := apply(DefaultHero(), map[string]any{"title": "Run a Leaner Warehouse with"})
	require.NoError(t, err)

	want := DefaultHero()
	want.Title = "Run a Leaner Warehouse with"
	assert.Equal(t, want, got)
}

func TestMerge_everyKeyIsAddressable(t *testing.T) {
	for _, rec := range []any{DefaultHero(), DefaultFeatures(), DefaultPricing(), DefaultContact(), DefaultFooter()} {
		for _, key := range Keys(rec) {
			if key == "features" {
				continue
			}
			t.Run(key, func(t *testing.T) {
				dst := rec
				switch v := dst.(type) {
				case Hero:
					require.NoError(t, Merge(&v, map[string]any{key: "x"}))
					assert.Contains(t, fieldsOf(v), "x")
				case Features:
					require.NoError(t, Merge(&v, map[string]any{key: "x"}))
					assert.Contains(t, fieldsOf(v), "x")
				case Pricing:
					require.NoError(t, Merge(&v, map[string]any{key: "x"}))
					assert.Contains(t, fieldsOf(v), "x")
				case Contact:
					require.NoError(t, Merge(&v, map[string]any{key: "x"}))
					assert.Contains(t, fieldsOf(v), "x")
				case Footer:
					require.NoError(t, Merge(&v, map[string]any{key: "x"}))
					assert.Contains(t, fieldsOf(v), "x")
				}
			})
		}
	}
}

func TestMerge_lists(t *testing.T) {
	base := DefaultHero()

	t.Run("indexed item", func(t *testing.T) {
		got, err := apply(base, map[string]any{"features[2]": "Cross-dock support"})
		require.NoError(t, err)
		assert.Equal(t, "Cross-dock support", got.Features[2])
		assert.Equal(t, "Multi-warehouse management", base.Features[2], "base must not change")
		assert.Equal(t, "Multi-warehouse management", DefaultHero().Features[2], "defaults must not change")
	})

	t.Run("whole list from yaml", func(t *testing.T) {
		got, err := apply(base, map[string]any{"features": []any{"One", "Two"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"One", "Two"}, got.Features)
	})

	t.Run("whole list", func(t *testing.T) {
		list := []string{"A"}
		got, err := apply(base, map[string]any{"features": list})
		require.NoError(t, err)
		list[0] = "changed"
		assert.Equal(t, []string{"A"}, got.Features)
	})
}

func TestMerge_errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		want      error
	}{
		{name: "unknown key", overrides: map[string]any{"subtitle": "x"}, want: ErrUnknownKey},
		{name: "wrong type", overrides: map[string]any{"title": 3}, want: ErrInvalidValue},
		{name: "index out of range", overrides: map[string]any{"features[4]": "x"}, want: ErrInvalidValue},
		{name: "negative index", overrides: map[string]any{"features[-1]": "x"}, want: ErrInvalidValue},
		{name: "index on a string", overrides: map[string]any{"title[0]": "x"}, want: ErrInvalidValue},
		{name: "list item not a string", overrides: map[string]any{"features": []any{"a", 1}}, want: ErrInvalidValue},
		{name: "malformed index", overrides: map[string]any{"features[1": "x"}, want: ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := DefaultHero()
			overrides := map[string]any{"badge": "kept only on success"}
			for k, v := range tt.overrides {
				overrides[k] = v
			}
			err := Merge(&h, overrides)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, DefaultHero(), h, "failed merge must leave the target untouched")
		})
	}

	require.Error(t, Merge(DefaultHero(), nil), "non-pointer target")
}

func TestLoad(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), site)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
hero:
  title: Run a Leaner Warehouse with
  features[0]: Live stock counts
pricing:
  plan1Price: $249
footer:
  social5Href: https://github.com/example
`), 0o600))

	site, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Run a Leaner Warehouse with", site.Hero.Title)
	assert.Equal(t, "Live stock counts", site.Hero.Features[0])
	assert.Equal(t, "$249", site.Pricing.Plan1Price)
	assert.Equal(t, "$799", site.Pricing.Plan2Price)
	assert.Equal(t, "https://github.com/example", site.Footer.Social5Href)
	assert.Equal(t, DefaultContact(), site.Contact)
}

func TestParse_errors(t *testing.T) {
	_, err := Parse([]byte("sidebar:\n  title: x\n"))
	require.ErrorIs(t, err, ErrUnknownKey)

	_, err = Parse([]byte("hero:\n  nope: x\n"))
	require.ErrorIs(t, err, ErrUnknownKey)

	_, err = Parse([]byte("hero: [not, a, mapping]\n"))
	require.Error(t, err)

	site, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), site)
}

func TestPricingPlans(t *testing.T) {
	p, err := apply(DefaultPricing(), map[string]any{"plan2Name": "Growth"})
	require.NoError(t, err)
	plans := p.Plans()
	require.Len(t, plans, 3)
	assert.Equal(t, "Growth", plans[1].Name)
	assert.True(t, plans[1].Popular)
	assert.Equal(t, "plan3", plans[2].Key)
	assert.Equal(t, "Contact Sales", plans[2].Badge)
	assert.Len(t, plans[0].Features, 5)
}

func TestWriteKeys(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteKeys(&b))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "hero:\n  badge\n"), out)
	for _, section := range Sections {
		assert.Contains(t, out, section+":\n")
	}
	assert.Contains(t, out, "  plan2Name\n")

	// every listed key is accepted by a content file
	var doc strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.HasPrefix(line, "  ") {
			doc.WriteString(line + "\n")
			continue
		}
		key := strings.TrimSpace(line)
		if key == "features" {
			doc.WriteString("  features: [a]\n")
			continue
		}
		doc.WriteString("  " + key + ": x\n")
	}
	_, err := Parse([]byte(doc.String()))
	require.NoError(t, err)
}
