package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Title:    "Потребность в корме 'Сено'",
		FeedType: "Сено",
		Total:    "30000.00",
		Unit:     domain.Unit,
		Sections: []domain.ReportSection{{
			Title:   "Расчет",
			Summary: map[string]interface{}{"profile": "default"},
			Details: []domain.ReportDetail{
				{Name: "Поголовье", Value: "200", Unit: "гол."},
				{Name: "Потребность", Value: "30000.00", Unit: domain.Unit, Description: "200 × 10 × 15"},
			},
		}},
	}
}

func TestTableReporter_Handle(t *testing.T) {
	var buf bytes.Buffer

	err := NewTableReporter(&buf).Handle(sampleReport())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Потребность в корме 'Сено'")
	assert.Contains(t, out, "Итого: 30000.00 ц")
	assert.Contains(t, out, "=== Расчет ===")
	assert.Contains(t, out, "profile: default")
	assert.Contains(t, out, "| Поголовье            | 200            | гол.     |")
}

func TestTableReporter_RowsAlignWithCyrillic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableReporter(&buf).Handle(sampleReport()))

	var widths []int
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "|") || strings.HasPrefix(line, "+") {
			widths = append(widths, len([]rune(line)))
		}
	}

	require.NotEmpty(t, widths)
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}

func TestJSONReporter_Handle(t *testing.T) {
	var buf bytes.Buffer

	err := NewJSONReporter(&buf).Handle(sampleReport())
	require.NoError(t, err)

	var decoded jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "30000.00", decoded.Total)
	assert.Equal(t, "Сено", decoded.FeedType)
	require.Len(t, decoded.Sections, 1)
	require.Len(t, decoded.Sections[0].Details, 2)
	assert.Equal(t, "Потребность", decoded.Sections[0].Details[1].Name)
	assert.Equal(t, "30000.00", decoded.Sections[0].Details[1].Value)
}
