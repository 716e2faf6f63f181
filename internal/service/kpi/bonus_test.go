package kpi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/staffdesk/payroll-backend-go/internal/domain/kpi"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCalculateBonus_Multiply(t *testing.T) {
	metric := kpi.Metric{Type: kpi.MetricMultiply, BaseRate: dec("5")}

	bonus := CalculateBonus(metric, dec("10"))

	assert.True(t, bonus.Equal(dec("50")), "bonus = %s", bonus)
}

func TestCalculateBonus_Percentage(t *testing.T) {
	metric := kpi.Metric{Type: kpi.MetricPercentage, BaseRate: dec("300")}

	tests := []struct {
		value string
		want  string
	}{
		{"50", "150"},
		{"100", "300"},
		{"130", "300"}, // capped at 100%
		{"0", "0"},
	}

	for _, tt := range tests {
		bonus := CalculateBonus(metric, dec(tt.value))
		assert.True(t, bonus.Equal(dec(tt.want)), "value %s: bonus = %s, want %s", tt.value, bonus, tt.want)
	}
}

func TestCalculateBonus_SumPercentage(t *testing.T) {
	metric := kpi.Metric{Type: kpi.MetricSumPercentage, BaseRate: dec("2")}

	// 2% of 15000
	bonus := CalculateBonus(metric, dec("15000"))

	assert.True(t, bonus.Equal(dec("300")), "bonus = %s", bonus)
}

func TestCalculateBonus_Tiered(t *testing.T) {
	metric := kpi.Metric{
		Type: kpi.MetricTiered,
		// deliberately unsorted: matching must sort by min_value first
		Tiers: []kpi.Tier{
			{MinValue: dec("100"), MaxValue: nil, Rate: dec("0.05")},
			{MinValue: dec("0"), MaxValue: decPtr("49.99"), Rate: dec("0.01")},
			{MinValue: dec("50"), MaxValue: decPtr("99.99"), Rate: dec("0.03")},
		},
	}

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"first band", "40", "0.4"},
		{"middle band", "60", "1.8"},
		{"open-ended band", "200", "10"},
		{"band boundary", "50", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bonus := CalculateBonus(metric, dec(tt.value))
			assert.True(t, bonus.Equal(dec(tt.want)), "bonus = %s, want %s", bonus, tt.want)
		})
	}
}

func TestCalculateBonus_TieredNoMatch(t *testing.T) {
	metric := kpi.Metric{
		Type: kpi.MetricTiered,
		Tiers: []kpi.Tier{
			{MinValue: dec("100"), MaxValue: decPtr("200"), Rate: dec("0.05")},
		},
	}

	assert.True(t, CalculateBonus(metric, dec("50")).IsZero())
}

func TestSumBonuses(t *testing.T) {
	results := []kpi.Result{
		{CalculatedBonus: dec("150.50")},
		{CalculatedBonus: dec("49.50")},
		{CalculatedBonus: dec("0")},
	}

	assert.True(t, SumBonuses(results).Equal(dec("200")))
	assert.True(t, SumBonuses(nil).IsZero())
}
