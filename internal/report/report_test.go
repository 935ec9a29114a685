package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manulapulga/pump-design/internal/report"
)

func testData() report.Data {
	return report.Data{
		Inputs: []report.Entry{
			{Label: "Total Tap Connections", Value: "20"},
			{Label: "Pipe Material", Value: "PVC"},
		},
		Results: []report.Entry{
			{Label: "Total Dynamic Head (TDH)", Value: "46.0 m"},
			{Label: "Selected Pump Model", Value: "SP-05-12"},
		},
		Recommendations: []string{
			"Recommended Pump: SP-05-12",
			"TDH falls within range: Yes",
		},
	}
}

func TestRender(t *testing.T) {
	content, err := report.Render(testData())
	require.NoError(t, err)
	require.True(t, len(content) > 4)
	require.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderWithoutRecommendations(t *testing.T) {
	data := testData()
	data.Recommendations = nil

	content, err := report.Render(data)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(content[:4]))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, report.Write(testData(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(content[:4]))
}
