package commands

import (
	"testing"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNorms = []domain.FeedNorm{
	{FeedType: "Концентраты", PerHeadPerDay: decimal.NewFromInt(5)},
	{FeedType: "Сено", PerHeadPerDay: decimal.NewFromInt(15)},
	{FeedType: "Силос", PerHeadPerDay: decimal.NewFromInt(20)},
}

func TestResolveFeedType(t *testing.T) {
	tests := []struct {
		choice string
		want   string
	}{
		{choice: "", want: "Концентраты"},
		{choice: "2", want: "Сено"},
		{choice: "3", want: "Силос"},
		{choice: "4", want: "4"},
		{choice: "0", want: "0"},
		{choice: "Силос", want: "Силос"},
		{choice: "Солома", want: "Солома"},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveFeedType(tt.choice, testNorms))
		})
	}
}

func TestFeedPrompt(t *testing.T) {
	assert.Equal(t, "Вид корма: 1) Концентраты 2) Сено 3) Силос [1]: ", feedPrompt(testNorms))
}
