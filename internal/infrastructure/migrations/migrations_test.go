package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Nombres, CNPJ y datos de funcionarios son texto libre: sin límite de largo en el esquema.
func TestEsquemaSinColumnasDeLargoFijo(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		files, err := fs.Glob(migrationsFS, dir+"/*.up.sql")
		require.NoError(t, err)
		require.NotEmpty(t, files, dir)
		for _, name := range files {
			raw, err := fs.ReadFile(migrationsFS, name)
			require.NoError(t, err)
			sql := strings.ToUpper(string(raw))
			assert.NotContains(t, sql, "VARCHAR", name)
			assert.NotContains(t, sql, "CHAR(", name)
		}
	}
}

func TestEsquemaRestriccionesDeSlot(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		raw, err := fs.ReadFile(migrationsFS, dir+"/000001_badge_templates.up.sql")
		require.NoError(t, err)
		sql := string(raw)
		assert.Contains(t, sql, "UNIQUE (company_id, slot_number)", dir)
		assert.Contains(t, sql, "CHECK (slot_number BETWEEN 1 AND 3)", dir)
	}
}
