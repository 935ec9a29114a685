package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/manulapulga/pump-design/internal/catalog"
)

func testPumps() []catalog.Pump {
	return []catalog.Pump{
		{Model: "SP-05-08", Phase: "Single", HP: 0.5, Stages: 8, MinHead: 20, MaxHead: 45},
		{Model: "SP-05-12", Phase: "Single", HP: 0.5, Stages: 12, MinHead: 35, MaxHead: 60},
		{Model: "SP-10-10", Phase: "Single", HP: 1, Stages: 10, MinHead: 30, MaxHead: 55},
		{Model: "SP-10-14", Phase: "Single", HP: 1, Stages: 14, MinHead: 45, MaxHead: 75},
		{Model: "TP-20-18", Phase: "Three", HP: 2, Stages: 18, MinHead: 60, MaxHead: 110},
	}
}

func TestSelect(t *testing.T) {
	cat := catalog.NewCatalog(testPumps())

	t.Run("exact HP match", func(t *testing.T) {
		selection, err := cat.Select(0.5, 9, 46)
		require.NoError(t, err)
		require.Equal(t, "SP-05-12", selection.Pump.Model)
		require.Equal(t, catalog.MatchExact, selection.Kind)
		require.True(t, selection.Compatible(46))
	})

	t.Run("higher HP when exact HP cannot cover", func(t *testing.T) {
		// 0.5 HP pumps exist but none reach 70 m with 14 stages.
		selection, err := cat.Select(0.5, 14, 70)
		require.NoError(t, err)
		require.Equal(t, "SP-10-14", selection.Pump.Model)
		require.Equal(t, catalog.MatchHigherHP, selection.Kind)
	})

	t.Run("TDH match ignores stage count", func(t *testing.T) {
		// No 1.5 HP pumps, so the exact and higher-HP passes are skipped.
		selection, err := cat.Select(1.5, 30, 90)
		require.NoError(t, err)
		require.Equal(t, "TP-20-18", selection.Pump.Model)
		require.Equal(t, catalog.MatchTDH, selection.Kind)
	})

	t.Run("last resort picks the largest pump", func(t *testing.T) {
		selection, err := cat.Select(5, 40, 200)
		require.NoError(t, err)
		require.Equal(t, "TP-20-18", selection.Pump.Model)
		require.Equal(t, catalog.MatchLastResort, selection.Kind)
		require.False(t, selection.Compatible(200))
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := catalog.NewCatalog(nil).Select(1, 10, 50)
		require.Error(t, err)
	})
}

func TestInHeadRange(t *testing.T) {
	pump := catalog.Pump{MinHead: 20, MaxHead: 45}
	require.True(t, pump.InHeadRange(20))
	require.True(t, pump.InHeadRange(45))
	require.False(t, pump.InHeadRange(19.9))
	require.False(t, pump.InHeadRange(45.1))
}

func TestLoad(t *testing.T) {
	t.Run("reads a workbook", func(t *testing.T) {
		path := writeWorkbook(t, [][]interface{}{
			{"Pump", "Phase", "HP", "No of Stages", "Min Head (m)", "Max Head (m)"},
			{"SP-10-10", "Single", 1, 10, 30, 55},
			{}, // blank rows are skipped
			{"SP-05-08", "Single", 0.5, 8, 20, 45},
		})

		cat, err := catalog.Load(path)
		require.NoError(t, err)
		require.Len(t, cat.Pumps, 2)

		// sorted by HP then stages
		require.Equal(t, "SP-05-08", cat.Pumps[0].Model)
		require.Equal(t, "SP-10-10", cat.Pumps[1].Model)
		require.Equal(t, 10, cat.Pumps[1].Stages)
		require.Equal(t, 55.0, cat.Pumps[1].MaxHead)
	})

	t.Run("missing column", func(t *testing.T) {
		path := writeWorkbook(t, [][]interface{}{
			{"Pump", "Phase", "HP", "No of Stages", "Min Head (m)"},
			{"SP-10-10", "Single", 1, 10, 30},
		})

		_, err := catalog.Load(path)
		require.ErrorContains(t, err, "Max Head (m)")
	})

	t.Run("bad cell value", func(t *testing.T) {
		path := writeWorkbook(t, [][]interface{}{
			{"Pump", "Phase", "HP", "No of Stages", "Min Head (m)", "Max Head (m)"},
			{"SP-10-10", "Single", "one", 10, 30, 55},
		})

		_, err := catalog.Load(path)
		require.ErrorContains(t, err, "row 2")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.xlsx"))
		require.Error(t, err)
	})
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "pumps.xlsx")
	require.NoError(t, workbook.SaveAs(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())

	return path
}
