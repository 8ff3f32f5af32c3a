package models

import (
	"fmt"
	"math"

	"github.com/peiplay/console-core/utils"
)

// Draft income allocation across an order's dispatch rounds. Rows are owned
// by the editing session; both functions leave their inputs untouched.

type ModePlayRoundRow struct {
	DispatchId string   `json:"dispatchId"`
	Round      int      `json:"round"`
	UserIds    []string `json:"userIds"`
	Income     *float64 `json:"income"`
}

// AllocCheck is the allocation validation result. Failures are values, not
// errors: Err carries the CS-facing message.
type AllocCheck struct {
	OK  bool    `json:"ok"`
	Sum float64 `json:"sum"`
	Err string  `json:"err"`
}

// allocEpsilon absorbs float noise from the editing UI when comparing the
// allocation sum against the paid amount.
const allocEpsilon = 1e-6

// ValidateModePlayAlloc checks every row's income is a finite number >= 0
// and that the total does not exceed the order's paid amount. The first
// invalid row short-circuits with the sum accumulated so far.
// Under-allocation is permitted: unallocated remainder is not an error.
func ValidateModePlayAlloc(rows []*ModePlayRoundRow, paidAmount float64) AllocCheck {
	sum := 0.0
	for _, row := range rows {
		if row == nil || row.Income == nil ||
			math.IsNaN(*row.Income) || math.IsInf(*row.Income, 0) || *row.Income < 0 {
			return AllocCheck{OK: false, Sum: sum, Err: "存在非法金额：每轮收入必须为不小于 0 的数字"}
		}
		sum += *row.Income
	}

	paid := utils.SafeFloat(paidAmount)
	if sum-paid > allocEpsilon {
		return AllocCheck{
			OK:  false,
			Sum: sum,
			Err: fmt.Sprintf("分配金额合计 %.2f 超过订单实付金额 %.2f", sum, paid),
		}
	}

	return AllocCheck{OK: true, Sum: sum}
}

// SeedModePlayEqualByRound splits paidAmount evenly across the rounds in
// integer cents, with the last row absorbing any odd-cent remainder so the
// seeded incomes sum to exactly round(paidAmount*100)/100.
func SeedModePlayEqualByRound(rows []*ModePlayRoundRow, paidAmount float64) []*ModePlayRoundRow {
	n := len(rows)
	if n == 0 {
		return rows
	}

	totalCents := utils.ToCents(utils.SafeFloat(paidAmount))
	if totalCents < 0 {
		totalCents = 0
	}
	base := totalCents / int64(n)
	remainder := totalCents - base*int64(n)

	seeded := make([]*ModePlayRoundRow, n)
	for i, row := range rows {
		cents := base
		if i == n-1 {
			cents += remainder
		}
		out := &ModePlayRoundRow{
			Income: utils.NewFloat(utils.CentsToAmount(cents)),
		}
		if row != nil {
			out.DispatchId = row.DispatchId
			out.Round = row.Round
			out.UserIds = append([]string(nil), row.UserIds...)
		}
		seeded[i] = out
	}
	return seeded
}
