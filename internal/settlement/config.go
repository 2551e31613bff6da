package settlement

import (
	"os"
	"strconv"
	"time"
)

// Rules are the business constants of the settlement pipeline. They default
// to the shop's long-standing policy and can be overridden per deployment
// through the environment, so the policy stays visible instead of buried in
// the arithmetic.
type Rules struct {
	// BrandMarker flags brand-affiliated clients by substring match on the
	// client name. Such jobs pay BrandFeeRate of the job amount as platform
	// fee, overriding any fee recorded on the job itself.
	BrandMarker  string
	BrandFeeRate float64

	// PassThroughRate is the fixed share of contractor-worked revenue that
	// flows to the executive pool, independent of the contractor's own
	// allowance rate.
	PassThroughRate float64

	// CompanyFundRate is skimmed from each track's profit before
	// distribution.
	CompanyFundRate float64

	// CacheTTL bounds snapshot staleness; DefaultRangeMonths is the lookback
	// applied when a query omits its date range.
	CacheTTL           time.Duration
	DefaultRangeMonths int
}

func DefaultRules() Rules {
	return Rules{
		BrandMarker:        "공간",
		BrandFeeRate:       0.22,
		PassThroughRate:    0.30,
		CompanyFundRate:    0.10,
		CacheTTL:           30 * time.Minute,
		DefaultRangeMonths: 2,
	}
}

// RulesFromEnv starts from the defaults and applies any SETTLEMENT_* override
// present in the environment. Unparseable values keep the default.
func RulesFromEnv() Rules {
	rules := DefaultRules()

	if v := os.Getenv("SETTLEMENT_BRAND_MARKER"); v != "" {
		rules.BrandMarker = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("SETTLEMENT_BRAND_FEE_RATE"), 64); err == nil && v >= 0 {
		rules.BrandFeeRate = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("SETTLEMENT_PASS_THROUGH_RATE"), 64); err == nil && v >= 0 {
		rules.PassThroughRate = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("SETTLEMENT_COMPANY_FUND_RATE"), 64); err == nil && v >= 0 {
		rules.CompanyFundRate = v
	}
	if v, err := time.ParseDuration(os.Getenv("SETTLEMENT_CACHE_TTL")); err == nil && v > 0 {
		rules.CacheTTL = v
	}
	if v, err := strconv.Atoi(os.Getenv("SETTLEMENT_DEFAULT_RANGE_MONTHS")); err == nil && v > 0 {
		rules.DefaultRangeMonths = v
	}

	return rules
}
