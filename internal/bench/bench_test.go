package bench_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/mgnsk/orderlist/internal/bench"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.toml")

	require.NoError(t, os.WriteFile(path, []byte(`
seed = 7

[[workload]]
name = "tiny"
pattern = "append"
inserts = 100

[[workload]]
name = "dense"
pattern = "densest"
inserts = 200
`), 0o644))

	cfg, err := bench.LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, uint64(7), cfg.Seed)
	require.Len(t, cfg.Workloads, 2)
	require.Equal(t, bench.PatternAppend, cfg.Workloads[0].Pattern)
	require.Equal(t, 200, cfg.Workloads[1].Inserts)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := bench.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
	})

	writeConfig := func(t *testing.T, body string) string {
		t.Helper()

		path := filepath.Join(t.TempDir(), "bench.toml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		return path
	}

	t.Run("unknown pattern", func(t *testing.T) {
		_, err := bench.LoadConfig(writeConfig(t, `
[[workload]]
name = "bad"
pattern = "sideways"
inserts = 1
`))
		require.ErrorContains(t, err, "unknown pattern")
	})

	t.Run("duplicate workload name", func(t *testing.T) {
		_, err := bench.LoadConfig(writeConfig(t, `
[[workload]]
name = "dup"
pattern = "append"
inserts = 1

[[workload]]
name = "dup"
pattern = "random"
inserts = 1
`))
		require.ErrorContains(t, err, "duplicate workload name")
	})

	t.Run("no workloads", func(t *testing.T) {
		_, err := bench.LoadConfig(writeConfig(t, `seed = 1`))
		require.ErrorContains(t, err, "no workloads")
	})

	t.Run("no inserts", func(t *testing.T) {
		_, err := bench.LoadConfig(writeConfig(t, `
[[workload]]
name = "empty"
pattern = "append"
inserts = 0
`))
		require.Error(t, err)
	})
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, bench.DefaultConfig().Validate())
}

func TestRun(t *testing.T) {
	cfg := bench.Config{
		Seed: 1,
		Workloads: []bench.Workload{
			{Name: "append", Pattern: bench.PatternAppend, Inserts: 500},
			{Name: "prepend", Pattern: bench.PatternPrepend, Inserts: 500},
			{Name: "random", Pattern: bench.PatternRandom, Inserts: 500},
			{Name: "densest", Pattern: bench.PatternDensest, Inserts: 500},
		},
	}
	require.NoError(t, cfg.Validate())

	logger := log.New(io.Discard)

	results := bench.Run(cfg, logger)
	require.Len(t, results, 4)

	for i, res := range results {
		require.Equal(t, cfg.Workloads[i].Name, res.Name)
		require.Equal(t, 500, res.Inserts)
	}

	rendered := bench.Table(results)
	require.Contains(t, rendered, "WORKLOAD")
	require.Contains(t, rendered, "densest")
}
