package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func series(current string) domain.Series {
	return domain.Series{
		{Label: "Позапрошлый год", Value: decimal.NewFromInt(51000)},
		{Label: "Прошлый год", Value: decimal.NewFromInt(29500)},
		{Label: domain.CurrentPeriodLabel, Value: decimal.RequireFromString(current)},
	}
}

func TestScatter_Render(t *testing.T) {
	var buf bytes.Buffer

	err := NewScatter().Render(&buf, series("15000"), "Концентраты")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Сравнение потребности в кормах (Концентраты)")
	assert.Contains(t, out, "Период")
	assert.Contains(t, out, "Потребность, ц")

	// three data points plus three legend markers
	assert.Equal(t, 6, strings.Count(out, "<circle"))
	assert.Equal(t, 1, strings.Count(out, "<polyline"))

	for _, s := range []string{"51,000 ц", "29,500 ц", "15,000 ц"} {
		assert.Contains(t, out, s)
	}
	for _, s := range []string{"51000 ц", "29500 ц", "15000 ц"} {
		assert.Contains(t, out, s)
	}
	for _, label := range []string{"Позапрошлый год", "Прошлый год", domain.CurrentPeriodLabel} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, `fill="red"`)
	assert.Contains(t, out, `fill="blue"`)
	assert.Contains(t, out, `fill="green"`)
}

func TestScatter_Layout(t *testing.T) {
	s := NewScatter()

	data := s.layout(series("51000"))

	require.Len(t, data.Points, 3)
	// equal values share a height, the highest point sits inside the plot area
	assert.InDelta(t, data.Points[0].Y, data.Points[2].Y, 0.001)
	assert.Greater(t, data.Points[0].Y, data.Top)
	assert.Less(t, data.Points[1].Y, data.Bottom)
	assert.Greater(t, data.Points[1].Y, data.Points[0].Y)
	assert.Less(t, data.Points[0].X, data.Points[1].X)
	assert.Less(t, data.Points[1].X, data.Points[2].X)
	assert.Len(t, data.Ticks, yTicks+1)
	assert.Equal(t, "0", data.Ticks[0].Label)
}

func TestScatter_Layout_AllZero(t *testing.T) {
	data := NewScatter().layout(domain.Series{{Label: "a", Value: decimal.Zero}})

	require.Len(t, data.Points, 1)
	assert.InDelta(t, data.Bottom, data.Points[0].Y, 0.001)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Сравнение потребности в кормах", Title(""))
	assert.Equal(t, "Сравнение потребности в кормах (Сено)", Title("Сено"))
}

func TestAnnotation_BeyondInt64(t *testing.T) {
	p := message.NewPrinter(language.English)

	tests := []struct {
		value string
		want  string
	}{
		{value: "51000", want: "51,000 ц"},
		{value: "999.5", want: "1,000 ц"},
		{value: "9223372036854775807", want: "9,223,372,036,854,775,807 ц"},
		{value: "1e19", want: "10,000,000,000,000,000,000 ц"},
		{value: "2e19", want: "20,000,000,000,000,000,000 ц"},
		{value: "-1e19", want: "-10,000,000,000,000,000,000 ц"},
		{value: "2e31", want: "20,000,000,000,000,000,000,000,000,000,000 ц"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, annotation(p, decimal.RequireFromString(tt.value)))
		})
	}
}

func TestScatter_Render_LargeRequirement(t *testing.T) {
	var buf bytes.Buffer

	err := NewScatter().Render(&buf, series("20000000000000000000000000000000"), "Силос")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "20,000,000,000,000,000,000,000,000,000,000 ц")

	data := NewScatter().layout(series("20000000000000000000000000000000"))
	for _, tk := range data.Ticks {
		assert.False(t, strings.HasPrefix(tk.Label, "-"), tk.Label)
	}
	assert.Equal(t, "23,000,000,000,000,000,000,000,000,000,000", data.Ticks[yTicks].Label)
}
