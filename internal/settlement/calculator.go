package settlement

import (
	"sort"
	"strings"

	"go-shopops/internal/job"
	"go-shopops/internal/shared/money"
	"go-shopops/internal/staff"

	"go.uber.org/zap"
)

// Calculator turns a snapshot into a settlement. It is pure and stateless:
// identical snapshots produce identical results, so it is safe to call
// concurrently and to cache by input range.
//
// Money flows through two tracks. Revenue worked by executives is settled
// directly: part cost and fees come off, the company fund takes its rate,
// and the rest splits by executive ratio. Revenue worked by contractors pays
// them their allowance-rate commission net of their share of costs, while a
// fixed pass-through rate of that revenue flows up to the executive pool,
// which is then settled the same way.
//
// Brand-client fees are asymmetric: an executive absorbs their pro-rata
// share directly, but a contractor's share is charged to the pass-through
// pool instead of the contractor's own pay.
type Calculator struct {
	rules  Rules
	logger *zap.Logger
}

func NewCalculator(rules Rules, logger ...*zap.Logger) *Calculator {
	l := zap.L().Named("settlement.calculator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settlement.calculator")
	}
	return &Calculator{rules: rules, logger: l}
}

func (c *Calculator) Calculate(snap Snapshot) *Result {
	res := &Result{
		Start:             snap.Start,
		End:               snap.End,
		FinalDistribution: map[string]int64{},
		CompanyPayments:   map[string]int64{},
		Jobs:              []JobBreakdown{},
		UnmatchedWorkers:  []UnmatchedWorker{},
		Executive:         ExecutiveTrack{Distribution: map[string]int64{}},
		Contract: ContractTrack{
			Payments:     map[string]int64{},
			Distribution: map[string]int64{},
		},
	}

	roster := make(map[string]staff.Staff, len(snap.Staff))
	executives := make([]staff.Staff, 0, len(snap.Staff))
	var totalRatio float64
	for _, member := range snap.Staff {
		roster[member.Name] = member
		if member.IsExecutive() {
			executives = append(executives, member)
			totalRatio += member.Ratio
		}
	}

	outboundByJob := make(map[string]int64)
	for _, part := range snap.OutboundParts {
		outboundByJob[part.TaskID.String()] += part.TotalAmount
	}

	var (
		execRevenue, execPartCost, execFee             float64
		contractRevenue, contractPartCost, contractFee float64
		passThroughBeforeFee, brandFeeCarried          float64
	)

	// Per-contractor accumulators feeding the company-payment audit figures.
	contractPassThrough := map[string]float64{}
	contractBrandFeeShare := map[string]float64{}
	contractPartShare := map[string]float64{}
	contractFeeShare := map[string]float64{}

	for _, j := range snap.Jobs {
		partCost := c.resolvePartCost(j, outboundByJob, snap.PriceMap)
		fee, isBrand := c.resolveFee(j)

		res.TotalRevenue += j.Amount
		res.TotalPartCost += partCost
		res.TotalFee += fee

		workers := j.WorkerNames()
		n := len(workers)

		res.Jobs = append(res.Jobs, JobBreakdown{
			JobID:      j.ID.String(),
			Client:     j.Client,
			Date:       j.Date.Format("2006-01-02"),
			Workers:    workers,
			Amount:     j.Amount,
			PartCost:   partCost,
			Fee:        fee,
			IsBrandFee: isBrand,
		})

		workerRevenue := money.Split(j.Amount, n)
		workerPartCost := money.Split(partCost, n)
		workerFee := money.Split(fee, n)

		for _, name := range workers {
			member, ok := roster[name]
			if !ok {
				c.logger.Warn("job worker not in roster, share dropped",
					zap.String("job_id", j.ID.String()),
					zap.String("worker", name),
				)
				res.UnmatchedWorkers = append(res.UnmatchedWorkers, UnmatchedWorker{
					JobID: j.ID.String(),
					Name:  name,
				})
				continue
			}

			switch {
			case member.IsExecutive():
				execRevenue += workerRevenue
				execPartCost += workerPartCost
				execFee += workerFee

			case member.IsContractWorker():
				feeShare := workerFee
				if isBrand {
					// Contractors never pay brand fees directly; their share
					// comes out of the pass-through pool instead.
					feeShare = 0
					brandFeeCarried += workerFee
					contractBrandFeeShare[name] += workerFee
				}

				gross := money.ApplyRate(workerRevenue, member.AllowanceRate)
				netPay := money.Round(gross - workerPartCost - feeShare)
				res.Contract.Payments[name] += netPay
				res.FinalDistribution[name] += netPay

				toExec := workerRevenue * c.rules.PassThroughRate
				passThroughBeforeFee += toExec
				contractPassThrough[name] += toExec

				contractRevenue += workerRevenue
				contractPartCost += workerPartCost
				contractFee += feeShare
				contractPartShare[name] += workerPartCost
				contractFeeShare[name] += feeShare
			}
		}
	}

	res.Executive.Revenue = money.Round(execRevenue)
	res.Executive.PartCost = money.Round(execPartCost)
	res.Executive.Fee = money.Round(execFee)
	if execRevenue > 0 {
		profit := execRevenue - execPartCost - execFee
		fund := money.Round(profit * c.rules.CompanyFundRate)
		remain := profit - float64(fund)

		res.Executive.Profit = money.Round(profit)
		res.Executive.CompanyFund = fund
		res.Executive.Remain = money.Round(remain)

		if totalRatio > 0 {
			for _, e := range executives {
				share := money.Round(remain * e.Ratio / totalRatio)
				res.Executive.Distribution[e.Name] = share
				res.FinalDistribution[e.Name] += share
			}
		}
	}

	res.Contract.Revenue = money.Round(contractRevenue)
	res.Contract.PartCost = money.Round(contractPartCost)
	res.Contract.Fee = money.Round(contractFee)
	res.Contract.PassThroughBeforeFee = money.Round(passThroughBeforeFee)
	res.Contract.BrandFeeCarried = money.Round(brandFeeCarried)
	if contractRevenue > 0 {
		remainder := money.Round(passThroughBeforeFee - brandFeeCarried)
		fund := money.Round(float64(remainder) * c.rules.CompanyFundRate)
		toExec := remainder - fund

		res.Contract.Remainder = remainder
		res.Contract.CompanyFund = fund
		res.Contract.ToExecutives = toExec

		if totalRatio > 0 {
			for _, e := range executives {
				share := money.Round(float64(toExec) * e.Ratio / totalRatio)
				res.Contract.Distribution[e.Name] = share
				res.FinalDistribution[e.Name] += share
			}
		}
	}

	res.TotalProfit = res.TotalRevenue - res.TotalPartCost - res.TotalFee
	res.CompanyFund = res.Executive.CompanyFund + res.Contract.CompanyFund

	names := make([]string, 0, len(contractPassThrough))
	for name := range contractPassThrough {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		res.CompanyPayments[name] = money.Round(
			contractPassThrough[name] - contractBrandFeeShare[name] +
				contractPartShare[name] + contractFeeShare[name],
		)
	}

	return res
}

// resolvePartCost prefers outbound stock records for the job; the job's own
// parts declaration is the estimate used when nothing was issued.
func (c *Calculator) resolvePartCost(j job.Job, outboundByJob map[string]int64, priceMap map[string]int64) int64 {
	if cost, ok := outboundByJob[j.ID.String()]; ok {
		return cost
	}
	if j.Parts.Malformed {
		c.logger.Warn("job parts field unparseable, part cost zero",
			zap.String("job_id", j.ID.String()),
		)
		return 0
	}
	return j.Parts.EstimatedCost(priceMap)
}

func (c *Calculator) resolveFee(j job.Job) (int64, bool) {
	if c.rules.BrandMarker != "" && strings.Contains(j.Client, c.rules.BrandMarker) {
		return money.Round(float64(j.Amount) * c.rules.BrandFeeRate), true
	}
	if j.Fee > 0 {
		return j.Fee, false
	}
	return 0, false
}
