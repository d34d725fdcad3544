package testutil

import (
	"testing"

	"lexibot/internal/catalog"
	"lexibot/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// TestCatalogYAML has one or two words per level
const TestCatalogYAML = `
A1: [{en: cat, ru: кошка}]
A2: [{en: dog, ru: собака}]
B1: [{en: bird, ru: птица}, {en: fish, ru: рыба}]
B2: [{en: wolf, ru: волк}]
C1: [{en: fox, ru: лиса}]
C2: [{en: owl, ru: сова}]
`

// NewTestCatalog creates a small deterministic catalog
func NewTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(TestCatalogYAML))
	require.NoError(t, err)
	return c
}

// NewTestEntry creates a test word entry
func NewTestEntry(source, target string) domain.WordEntry {
	return domain.WordEntry{Source: source, Target: target}
}
