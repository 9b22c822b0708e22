// Package chart renders the requirement comparison as a standalone HTML page
// with an inline SVG scatter plot.
package chart

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"strings"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	marginLeft   = 100
	marginRight  = 40
	marginTop    = 70
	marginBottom = 70
	yTicks       = 5
	// headroom above the highest point for its annotation
	headroom = 1.15
)

var (
	pointColors = []string{"red", "blue", "green"}

	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Scatter draws one point per series entry, a dashed line through them and a
// value annotation above every point.
type Scatter struct {
	Width  int
	Height int
}

func NewScatter() *Scatter {
	return &Scatter{Width: 1000, Height: 600}
}

type point struct {
	X, Y       float64
	Color      string
	Label      string
	Annotation string
	Legend     string
}

type tick struct {
	Y     float64
	Label string
}

type pageData struct {
	Title    string
	Width    int
	Height   int
	Left     float64
	Right    float64
	Top      float64
	Bottom   float64
	Points   []point
	Polyline string
	Ticks    []tick
	XLabel   string
	YLabel   string
}

var funcs = template.FuncMap{
	"half": func(v int) float64 { return float64(v) / 2 },
	"add":  func(a, b float64) float64 { return a + b },
	"sub":  func(a, b float64) float64 { return a - b },
	"mid":  func(a, b float64) float64 { return (a + b) / 2 },
	"legendY": func(top float64, i int) float64 {
		return top + 25 + float64(i)*20
	},
}

var page = template.Must(template.New("chart").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}" font-family="Arial, sans-serif">
<text x="{{printf "%.1f" (half .Width)}}" y="35" text-anchor="middle" font-size="18" font-weight="bold">{{.Title}}</text>
{{range .Ticks}}<line x1="{{printf "%.1f" $.Left}}" x2="{{printf "%.1f" $.Right}}" y1="{{printf "%.1f" .Y}}" y2="{{printf "%.1f" .Y}}" stroke="#999" stroke-opacity="0.3" stroke-dasharray="4 4"/>
<text x="{{printf "%.1f" (sub $.Left 8)}}" y="{{printf "%.1f" .Y}}" text-anchor="end" dominant-baseline="middle" font-size="11">{{.Label}}</text>
{{end}}<line x1="{{printf "%.1f" .Left}}" x2="{{printf "%.1f" .Right}}" y1="{{printf "%.1f" .Bottom}}" y2="{{printf "%.1f" .Bottom}}" stroke="black"/>
<line x1="{{printf "%.1f" .Left}}" x2="{{printf "%.1f" .Left}}" y1="{{printf "%.1f" .Top}}" y2="{{printf "%.1f" .Bottom}}" stroke="black"/>
<polyline points="{{.Polyline}}" fill="none" stroke="black" stroke-opacity="0.3" stroke-dasharray="6 4"/>
{{range .Points}}<circle cx="{{printf "%.1f" .X}}" cy="{{printf "%.1f" .Y}}" r="10" fill="{{.Color}}" fill-opacity="0.7" stroke="black" stroke-width="2"/>
<text x="{{printf "%.1f" .X}}" y="{{printf "%.1f" (sub .Y 16)}}" text-anchor="middle" font-size="12" font-weight="bold">{{.Annotation}}</text>
<text x="{{printf "%.1f" .X}}" y="{{printf "%.1f" (add $.Bottom 22)}}" text-anchor="middle" font-size="13">{{.Label}}</text>
{{end}}<text x="{{printf "%.1f" (half .Width)}}" y="{{printf "%.1f" (add .Bottom 52)}}" text-anchor="middle" font-size="14">{{.XLabel}}</text>
<text x="22" y="{{printf "%.1f" (mid .Top .Bottom)}}" text-anchor="middle" font-size="14" transform="rotate(-90 22 {{printf "%.1f" (mid .Top .Bottom)}})">{{.YLabel}}</text>
<g class="legend">
<text x="{{printf "%.1f" (sub .Right 130)}}" y="{{printf "%.1f" (add .Top 5)}}" font-size="12" font-weight="bold">Значения</text>
{{range $i, $p := .Points}}<circle cx="{{printf "%.1f" (sub $.Right 122)}}" cy="{{printf "%.1f" (legendY $.Top $i)}}" r="5" fill="{{$p.Color}}" stroke="black"/>
<text x="{{printf "%.1f" (sub $.Right 110)}}" y="{{printf "%.1f" (legendY $.Top $i)}}" dominant-baseline="middle" font-size="12">{{$p.Legend}}</text>
{{end}}</g>
</svg>
</body>
</html>
`))

// Title builds the chart heading for a feed type.
func Title(feedType string) string {
	if feedType == "" {
		return "Сравнение потребности в кормах"
	}
	return fmt.Sprintf("Сравнение потребности в кормах (%s)", feedType)
}

// Render writes the HTML page for series to w.
func (s *Scatter) Render(w io.Writer, series domain.Series, feedType string) error {
	data := s.layout(series)
	data.Title = Title(feedType)
	data.XLabel = "Период"
	data.YLabel = "Потребность, " + domain.Unit

	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func (s *Scatter) layout(series domain.Series) pageData {
	data := pageData{
		Width:  s.Width,
		Height: s.Height,
		Left:   marginLeft,
		Right:  float64(s.Width - marginRight),
		Top:    marginTop,
		Bottom: float64(s.Height - marginBottom),
	}

	yMax := series.Max().InexactFloat64() * headroom
	if yMax <= 0 {
		yMax = 1
	}
	plotW := data.Right - data.Left
	plotH := data.Bottom - data.Top
	scaleY := func(v float64) float64 {
		return data.Bottom - v/yMax*plotH
	}

	printer := message.NewPrinter(language.English)
	for i := 0; i <= yTicks; i++ {
		v := yMax * float64(i) / yTicks
		data.Ticks = append(data.Ticks, tick{Y: scaleY(v), Label: wholeNumber(printer, decimal.NewFromFloat(v))})
	}

	coords := make([]string, 0, len(series))
	for i, p := range series {
		x := data.Left + (float64(i)+0.5)*plotW/float64(len(series))
		y := scaleY(p.Value.InexactFloat64())
		data.Points = append(data.Points, point{
			X:          x,
			Y:          y,
			Color:      pointColors[i%len(pointColors)],
			Label:      p.Label,
			Annotation: annotation(printer, p.Value),
			Legend:     p.Value.StringFixed(0) + " " + domain.Unit,
		})
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	data.Polyline = strings.Join(coords, " ")

	return data
}

// annotation formats a value with thousands separators, e.g. "51,000 ц".
func annotation(p *message.Printer, v decimal.Decimal) string {
	return wholeNumber(p, v) + " " + domain.Unit
}

// wholeNumber rounds v to an integer and groups its digits by thousands.
// Values outside int64 are grouped from the decimal text.
func wholeNumber(p *message.Printer, v decimal.Decimal) string {
	r := v.Round(0)
	if r.GreaterThanOrEqual(minInt64) && r.LessThanOrEqual(maxInt64) {
		return p.Sprintf("%d", r.IntPart())
	}
	return groupDigits(r.String())
}

func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
