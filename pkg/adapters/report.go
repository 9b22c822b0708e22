package adapters

import (
	"fmt"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
)

func MapCalculationToReport(result domain.CalculationResult, breakdown string, precision int32) *domain.Report {
	details := []domain.ReportDetail{
		{Name: "Поголовье", Value: result.Input.HerdSize.String(), Unit: "гол.", Description: "herd size"},
		{Name: "Дней содержания", Value: result.Input.Days.String(), Unit: "дн.", Description: "days"},
		{Name: "Норматив", Value: result.Norm.String(), Unit: domain.Unit + "/гол.", Description: "daily norm per head"},
		{Name: "Потребность", Value: result.Requirement.StringFixed(precision), Unit: domain.Unit, Description: breakdown},
	}
	if result.NormFallback {
		details = append(details, domain.ReportDetail{
			Name:        "Внимание",
			Value:       "norm 0",
			Description: fmt.Sprintf("no norm for feed type %q", result.Input.FeedType),
		})
	}

	return &domain.Report{
		Title:    fmt.Sprintf("Потребность в корме '%s'", result.Input.FeedType),
		FeedType: result.Input.FeedType,
		Total:    result.Requirement.StringFixed(precision),
		Unit:     domain.Unit,
		Sections: []domain.ReportSection{{
			Title: "Расчет",
			Summary: map[string]interface{}{
				"Вид корма": result.Input.FeedType,
				"Норматив":  result.Norm.String() + " " + domain.Unit + "/гол.",
			},
			Details: details,
		}},
	}
}

func MapSeriesToReport(series domain.Series, feedType string, precision int32) *domain.Report {
	details := make([]domain.ReportDetail, 0, len(series))
	for _, p := range series {
		details = append(details, domain.ReportDetail{
			Name:  p.Label,
			Value: p.Value.StringFixed(precision),
			Unit:  domain.Unit,
		})
	}

	title := "Сравнение потребности в кормах"
	if feedType != "" {
		title = fmt.Sprintf("%s (%s)", title, feedType)
	}

	total := ""
	if len(series) > 0 {
		total = series[len(series)-1].Value.StringFixed(precision)
	}

	return &domain.Report{
		Title:    title,
		FeedType: feedType,
		Total:    total,
		Unit:     domain.Unit,
		Sections: []domain.ReportSection{{
			Title:   "Период",
			Details: details,
		}},
	}
}

func MapNormsToReport(norms []domain.FeedNorm) *domain.Report {
	details := make([]domain.ReportDetail, 0, len(norms))
	for _, n := range norms {
		details = append(details, domain.ReportDetail{
			Name:  n.FeedType,
			Value: n.PerHeadPerDay.String(),
			Unit:  domain.Unit,
		})
	}
	return &domain.Report{
		Title: "Нормативы потребности на 1 голову в день",
		Unit:  domain.Unit,
		Sections: []domain.ReportSection{{
			Title:   "Вид корма",
			Details: details,
		}},
	}
}

func MapHistoryToReport(history []domain.HistoricalRecord) *domain.Report {
	details := make([]domain.ReportDetail, 0, len(history))
	for _, h := range history {
		details = append(details, domain.ReportDetail{
			Name:  h.Period,
			Value: h.Total.String(),
			Unit:  domain.Unit,
		})
	}
	return &domain.Report{
		Title: "Данные за предыдущие годы",
		Unit:  domain.Unit,
		Sections: []domain.ReportSection{{
			Title:   "Период",
			Details: details,
		}},
	}
}
