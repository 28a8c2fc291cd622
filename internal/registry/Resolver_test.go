package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "aave-v3", Normalize("Aave V3"))
	assert.Equal(t, "morpho-blue", Normalize("Morpho Blue"))
	assert.Equal(t, "aave-v3", Normalize("AAVE  V3")) // whitespace runs collapse
	assert.Equal(t, "fluid", Normalize("Fluid"))
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Aave V3", "aave v3", "AAVE V3", "aave-v3"} {
		record, ok := Resolve(name)
		require.True(t, ok, "expected %q to resolve", name)
		assert.Equal(t, "aave-v3", record.Slug)
	}
}

func TestResolveByAlias(t *testing.T) {
	record, ok := Resolve("benqi-lending")
	require.True(t, ok)
	assert.Equal(t, "benqi", record.Slug)

	record, ok = Resolve("kamino-lending")
	require.True(t, ok)
	assert.Equal(t, "kamino", record.Slug)

	record, ok = Resolve("cap")
	require.True(t, ok)
	assert.Equal(t, "cap-money", record.Slug)
}

func TestResolveStripsVersionSuffix(t *testing.T) {
	// "morpho-blue" resolves exactly; "Morpho V1" falls back to "morpho"
	// once the version suffix is stripped
	record, ok := Resolve("Morpho V1")
	require.True(t, ok)
	assert.Equal(t, "morpho", record.Slug)
}

func TestResolveNeverSubstitutesVersions(t *testing.T) {
	// Euler V2 is registered; an unknown Euler version must not borrow its
	// record
	record, ok := Resolve("Euler V2")
	require.True(t, ok)
	assert.Equal(t, "euler-v2", record.Slug)

	_, ok = Resolve("Euler V5")
	assert.False(t, ok)
}

func TestResolveUnknownProtocol(t *testing.T) {
	record, ok := Resolve("Totally Made Up Finance")
	assert.False(t, ok)
	assert.Nil(t, record)
}

func TestResolveByDisplayName(t *testing.T) {
	// Display names with punctuation that normalization would not produce
	record, ok := Resolve("MarginFi")
	require.True(t, ok)
	assert.Equal(t, "marginfi", record.Slug)
}

func TestRegistryDataIntegrity(t *testing.T) {
	records := All()
	require.NotEmpty(t, records)

	seen := make(map[string]bool)
	for _, record := range records {
		assert.NotEmpty(t, record.Name, "record %q has no name", record.Slug)
		assert.NotEmpty(t, record.Slug)
		assert.False(t, seen[record.Slug], "duplicate slug %q", record.Slug)
		seen[record.Slug] = true

		for _, auditor := range record.Auditors {
			assert.GreaterOrEqual(t, auditor.Tier, 1, "%s auditor %s has invalid tier", record.Slug, auditor.Name)
			assert.LessOrEqual(t, auditor.Tier, 3, "%s auditor %s has invalid tier", record.Slug, auditor.Name)
		}

		if record.Insurance != nil {
			assert.NotEmpty(t, record.Insurance.Provider, "%s insurance has no provider", record.Slug)
		}
	}
}

func TestLookup(t *testing.T) {
	record, ok := Lookup("spark")
	require.True(t, ok)
	assert.Equal(t, "Spark", record.Name)

	// Lookup is exact slug only, no normalization
	_, ok = Lookup("Spark")
	assert.False(t, ok)
}
