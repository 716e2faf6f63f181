package kpi

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/payroll-backend-go/internal/domain/kpi"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// CalculateBonus computes the bonus for one reported metric value.
//
// Tiered metrics match the first band (by ascending min_value) containing the
// value; tiers are sorted here so an unsorted or overlapping tier table still
// resolves deterministically to the lowest band. No matching band means no
// bonus.
func CalculateBonus(metric kpi.Metric, value decimal.Decimal) decimal.Decimal {
	switch metric.Type {
	case kpi.MetricTiered:
		tiers := make([]kpi.Tier, len(metric.Tiers))
		copy(tiers, metric.Tiers)
		sort.Slice(tiers, func(i, j int) bool {
			return tiers[i].MinValue.LessThan(tiers[j].MinValue)
		})
		for _, tier := range tiers {
			if value.GreaterThanOrEqual(tier.MinValue) && (tier.MaxValue == nil || value.LessThanOrEqual(*tier.MaxValue)) {
				return value.Mul(tier.Rate).Round(2)
			}
		}
		return decimal.Zero

	case kpi.MetricMultiply:
		return value.Mul(metric.BaseRate).Round(2)

	case kpi.MetricPercentage:
		// value is a 0-100 percentage of target, capped at 100%
		ratio := value.Div(hundred)
		if ratio.GreaterThan(one) {
			ratio = one
		}
		return metric.BaseRate.Mul(ratio).Round(2)

	case kpi.MetricSumPercentage:
		// value is a currency sum, base rate a percentage of it
		return value.Mul(metric.BaseRate).Div(hundred).Round(2)
	}

	return decimal.Zero
}

// SumBonuses aggregates calculated bonuses over a period's results.
func SumBonuses(results []kpi.Result) decimal.Decimal {
	total := decimal.Zero
	for _, res := range results {
		total = total.Add(res.CalculatedBonus)
	}
	return total.Round(2)
}
