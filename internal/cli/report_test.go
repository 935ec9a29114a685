package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/manulapulga/pump-design/internal/catalog"
	"github.com/manulapulga/pump-design/internal/config"
	"github.com/manulapulga/pump-design/internal/hydraulics"
)

func testSizing(t *testing.T) (hydraulics.Input, *hydraulics.Sizing) {
	t.Helper()

	flags := &sizingFlags{}
	flags.register(&cobra.Command{})

	input, err := flags.toInput()
	require.NoError(t, err)

	sizing, err := hydraulics.Compute(input)
	require.NoError(t, err)
	return input, sizing
}

func TestBuildReportData(t *testing.T) {
	input, sizing := testSizing(t)
	data := buildReportData(input, sizing)

	require.Len(t, data.Inputs, 12)
	require.Equal(t, "Borewell Yield (LPH)", data.Inputs[0].Label)
	require.Equal(t, "2000", data.Inputs[0].Value)
	require.Equal(t, "PVC", data.Inputs[8].Value)

	labels := make(map[string]string, len(data.Results))
	for _, entry := range data.Results {
		labels[entry.Label] = entry.Value
	}
	require.Equal(t, "1000", labels["Total Daily Demand (liters)"])
	require.Equal(t, "167", labels["Required Flow Rate (LPH)"])
	require.Equal(t, "46.0", labels["Total Dynamic Head (m)"])
	require.Equal(t, "9", labels["Number of Stages"])
	require.Equal(t, "good", labels["Pipe Sizing Status"])
}

func TestBuildRecommendations(t *testing.T) {
	_, sizing := testSizing(t)
	selection := catalog.Selection{
		Pump: catalog.Pump{Model: "SP-05-12", HP: 0.5, Stages: 12, MinHead: 35, MaxHead: 60},
		Kind: catalog.MatchExact,
	}

	lines := buildRecommendations(sizing, selection)
	require.Len(t, lines, 3)
	require.Equal(t, "Recommended pump: SP-05-12 (0.5 HP, 12 stages)", lines[0])
	require.Equal(t, "Head range of pump: 35 - 60 m", lines[1])
	require.Equal(t, "TDH falls within range: Yes", lines[2])

	selection.Pump.MaxHead = 40
	lines = buildRecommendations(sizing, selection)
	require.Equal(t, "TDH falls within range: No", lines[2])
}

func TestResolveCatalogPath(t *testing.T) {
	require.Equal(t, "custom.xlsx", resolveCatalogPath("custom.xlsx"))

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.Equal(t, defaultCatalogPath, resolveCatalogPath(""))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	cfg.CatalogPath = filepath.Join("data", "Pumps.xlsx")
	require.NoError(t, cfg.Save())

	require.Equal(t, cfg.CatalogPath, resolveCatalogPath(""))
}
