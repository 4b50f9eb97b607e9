package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/fieldio/lib/field"
	"github.com/phil-mansfield/fieldio/lib/mesh"
)

// writeTestField writes timesteps of a field where element (i, j, k) of
// timestep t is t + i + 10*j + 100*k.
func writeTestField(
	t *testing.T, cfg field.Config, g mesh.Grid, steps ...int,
) *field.Field {
	t.Helper()
	f, err := field.New(cfg)
	require.NoError(t, err)

	for _, step := range steps {
		vol := field.NewVolume(g.Nx, g.Ny, g.Nz, f.Precision)
		for k := 0; k < g.Nz; k++ {
			for j := 0; j < g.Ny; j++ {
				for i := 0; i < g.Nx; i++ {
					vol.Set(i, j, k, float64(step + i + 10*j + 100*k))
				}
			}
		}
		require.NoError(t, f.Set(step, vol))
	}
	require.NoError(t, f.Write(field.AllTimes(), field.DefaultTimestampLen))
	f.Clear()
	return f
}

func testConfig(dir, name string, props map[string]string) field.Config {
	p := map[string]string{
		"filename": filepath.Join(dir, name), "direction": "0",
	}
	for key, val := range props { p[key] = val }
	return field.Config{ Name: name, Description: name, Properties: p }
}

func writeConfigFile(t *testing.T, text string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "fieldio.ini")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0644))
	return fileName
}
