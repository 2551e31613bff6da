package settlement

// Result is the full settlement for a date range. It is a pure value,
// recomputed on every query; the aggregate totals are authoritative over the
// per-job and per-person detail rows, which carry independent rounding.
type Result struct {
	Start string `json:"start"`
	End   string `json:"end"`

	// Totals from unsplit job-level sums, independent of the per-worker
	// split.
	TotalRevenue  int64 `json:"total_revenue"`
	TotalPartCost int64 `json:"total_part_cost"`
	TotalFee      int64 `json:"total_fee"`
	TotalProfit   int64 `json:"total_profit"`

	// CompanyFund is the sum of both tracks' fund skims.
	CompanyFund int64 `json:"company_fund"`

	Executive ExecutiveTrack `json:"executive"`
	Contract  ContractTrack  `json:"contract"`

	// FinalDistribution is what each person ends up with: contractor net
	// pay plus the executives' shares from both tracks.
	FinalDistribution map[string]int64 `json:"final_distribution"`

	// CompanyPayments is the per-contractor reconciliation figure: what the
	// company retains out of that contractor's jobs.
	CompanyPayments map[string]int64 `json:"company_payments"`

	Jobs             []JobBreakdown    `json:"jobs"`
	UnmatchedWorkers []UnmatchedWorker `json:"unmatched_workers"`
}

// ExecutiveTrack settles revenue worked directly by executives.
type ExecutiveTrack struct {
	Revenue      int64            `json:"revenue"`
	PartCost     int64            `json:"part_cost"`
	Fee          int64            `json:"fee"`
	Profit       int64            `json:"profit"`
	CompanyFund  int64            `json:"company_fund"`
	Remain       int64            `json:"remain"`
	Distribution map[string]int64 `json:"distribution"`
}

// ContractTrack settles revenue worked by contractors: their commission pay,
// and the fixed pass-through share that flows up to the executive pool.
type ContractTrack struct {
	Revenue  int64 `json:"revenue"`
	PartCost int64 `json:"part_cost"`

	// Fee excludes brand fees, which are tracked in BrandFeeCarried.
	Fee int64 `json:"fee"`

	// Payments is each contractor's accumulated net pay.
	Payments map[string]int64 `json:"payments"`

	// PassThroughBeforeFee is the cumulative fixed-rate share of contractor
	// revenue before brand fees are deducted from it. BrandFeeCarried is the
	// contractors' pro-rata brand fees, charged to this pool rather than to
	// the contractors themselves.
	PassThroughBeforeFee int64 `json:"pass_through_before_fee"`
	BrandFeeCarried      int64 `json:"brand_fee_carried"`

	Remainder    int64            `json:"remainder"`
	CompanyFund  int64            `json:"company_fund"`
	ToExecutives int64            `json:"to_executives"`
	Distribution map[string]int64 `json:"distribution"`
}

// JobBreakdown records the per-job resolution that fed the split.
type JobBreakdown struct {
	JobID      string   `json:"job_id"`
	Client     string   `json:"client"`
	Date       string   `json:"date"`
	Workers    []string `json:"workers"`
	Amount     int64    `json:"amount"`
	PartCost   int64    `json:"part_cost"`
	Fee        int64    `json:"fee"`
	IsBrandFee bool     `json:"is_brand_fee"`
}

// UnmatchedWorker flags a job worker name absent from the active roster.
// That slot's share of the job is dropped from both tracks.
type UnmatchedWorker struct {
	JobID string `json:"job_id"`
	Name  string `json:"name"`
}
