package models

import (
	"sort"
	"strings"

	"github.com/peiplay/console-core/utils"
)

// Derived view models for the order reconcile panel. Everything here is a
// pure function of the Order input: no mutation, no I/O, safe to recompute
// on every call (callers memoize on input identity if they care).

type UserEarnings struct {
	UserId string `json:"userId"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`

	// Income and Expense are stored as positive amounts; Net = Income - Expense.
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

type EarningsSummary struct {
	Income           float64 `json:"income"`
	PayoutIncome     float64 `json:"payoutIncome"`
	PayoutExpenseAbs float64 `json:"payoutExpenseAbs"`

	// PlatformSuggested = Income - PayoutIncome + PayoutExpenseAbs.
	// This is the accounting identity the whole panel hangs off, not just a
	// display field.
	PlatformSuggested float64 `json:"platformSuggested"`

	// Payout and Platform are legacy aliases kept for older console views:
	// Payout = PayoutIncome - PayoutExpenseAbs, Platform = Income - Payout.
	Payout   float64 `json:"payout"`
	Platform float64 `json:"platform"`

	PerUser []*UserEarnings `json:"perUser"`
}

type WalletSummaryView struct {
	Total     float64 `json:"total"`
	Frozen    float64 `json:"frozen"`
	Available float64 `json:"available"`
}

type ReconcileHintView struct {
	Status          ReconcileStatus `json:"status"`
	SettlementTotal float64         `json:"settlementTotal"`
	WalletTotal     float64         `json:"walletTotal"`
	Diff            float64         `json:"diff"`
}

// UserReconcileRow is the per-participant reconcile row. WalletTotal is a
// documented legacy alias of WalletNet (upstream overloaded the name to mean
// "net"); both are emitted so older console columns keep working.
type UserReconcileRow struct {
	UserId          string          `json:"userId"`
	Name            string          `json:"name"`
	SettlementTotal float64         `json:"settlementTotal"`
	WalletNet       float64         `json:"walletNet"`
	WalletTotal     float64         `json:"walletTotal"`
	WalletIn        float64         `json:"walletIn"`
	WalletOut       float64         `json:"walletOut"`
	Diff            float64         `json:"diff"`
	Status          ReconcileStatus `json:"status"`
}

type OrderReconcileResult struct {
	SettlementTotal float64             `json:"settlementTotal"`
	Earnings        *EarningsSummary    `json:"earnings"`
	Wallet          *WalletSummaryView  `json:"wallet"`
	Hint            *ReconcileHintView  `json:"hint"`
	UserRows        []*UserReconcileRow `json:"userRows"`
}

// SettlementTotal sums finalEarnings across the order's settlement records.
// The sum is kept as a raw decimal value (not currency-rounded) because
// downstream diff arithmetic rounds once, at the end.
func SettlementTotal(order *Order) float64 {
	if order == nil {
		return 0
	}
	total := 0.0
	for _, s := range order.Settlements {
		if s == nil {
			continue
		}
		total += utils.SafeNumber(s.FinalEarnings)
	}
	return total
}

// settlementUserId resolves the aggregation key for a settlement record:
// userId, then the nested user's id, then "0".
func settlementUserId(s *Settlement) string {
	if id := strings.TrimSpace(utils.DereferencePtr(s.UserId)); id != "" {
		return id
	}
	if s.User != nil {
		if id := strings.TrimSpace(utils.DereferencePtr(s.User.ID)); id != "" {
			return id
		}
	}
	return "0"
}

type userCents struct {
	userId  string
	name    string
	phone   string
	income  int64
	expense int64
}

// BuildEarningsSummary aggregates the order's settlements into the earnings
// panel. All arithmetic runs in integer cents; amounts convert back to
// 2-decimal currency numbers only at the end.
func BuildEarningsSummary(order *Order) *EarningsSummary {
	summary := &EarningsSummary{PerUser: []*UserEarnings{}}
	if order == nil {
		return summary
	}

	var incomeCents int64
	if !utils.DereferencePtr(order.IsGifted) {
		// Gifted orders contribute zero income regardless of paid amount.
		incomeCents = utils.ToCents(utils.SafeNumber(order.PaidAmount))
	}

	var payoutIncomeCents, payoutExpenseAbsCents int64
	byUser := make(map[string]*userCents)
	var userOrder []string

	for _, s := range order.Settlements {
		if s == nil || s.FinalEarnings == nil {
			continue
		}
		earnings := utils.SafeFloat(*s.FinalEarnings)
		if earnings == 0 {
			// Zero is a no-op record, not an explicit zero: it must not
			// create a per-user row or touch any aggregate.
			continue
		}

		abs := earnings
		if abs < 0 {
			abs = -abs
		}
		cents := utils.ToCents(abs)

		uid := settlementUserId(s)
		row, ok := byUser[uid]
		if !ok {
			row = &userCents{userId: uid}
			byUser[uid] = row
			userOrder = append(userOrder, uid)
		}
		if row.name == "" && s.User != nil {
			row.name = strings.TrimSpace(utils.DereferencePtr(s.User.Name))
		}
		if row.phone == "" && s.User != nil {
			row.phone = strings.TrimSpace(utils.DereferencePtr(s.User.Phone))
		}

		if earnings < 0 {
			payoutExpenseAbsCents += cents
			row.expense += cents
		} else {
			payoutIncomeCents += cents
			row.income += cents
		}
	}

	platformSuggestedCents := incomeCents - payoutIncomeCents + payoutExpenseAbsCents
	payoutCents := payoutIncomeCents - payoutExpenseAbsCents

	summary.Income = utils.CentsToAmount(incomeCents)
	summary.PayoutIncome = utils.CentsToAmount(payoutIncomeCents)
	summary.PayoutExpenseAbs = utils.CentsToAmount(payoutExpenseAbsCents)
	summary.PlatformSuggested = utils.CentsToAmount(platformSuggestedCents)
	summary.Payout = utils.CentsToAmount(payoutCents)
	summary.Platform = utils.CentsToAmount(incomeCents - payoutCents)

	for _, uid := range userOrder {
		row := byUser[uid]
		name := row.name
		if name == "" {
			name = "-"
		}
		phone := row.phone
		if phone == "" {
			phone = "-"
		}
		summary.PerUser = append(summary.PerUser, &UserEarnings{
			UserId:  row.userId,
			Name:    name,
			Phone:   phone,
			Income:  utils.CentsToAmount(row.income),
			Expense: utils.CentsToAmount(row.expense),
			Net:     utils.CentsToAmount(row.income - row.expense),
		})
	}

	// Net descending; equal nets order by ascending userId so the listing is
	// deterministic across calls.
	sort.SliceStable(summary.PerUser, func(i, j int) bool {
		if summary.PerUser[i].Net != summary.PerUser[j].Net {
			return summary.PerUser[i].Net > summary.PerUser[j].Net
		}
		return summary.PerUser[i].UserId < summary.PerUser[j].UserId
	})

	return summary
}

// BuildOrderReconcile computes the full reconcile view for one order. It
// never fails: malformed or missing fields coerce to safe defaults.
func BuildOrderReconcile(order *Order) *OrderReconcileResult {
	result := &OrderReconcileResult{
		SettlementTotal: SettlementTotal(order),
		Earnings:        BuildEarningsSummary(order),
		UserRows:        []*UserReconcileRow{},
	}
	if order == nil {
		return result
	}

	if ws := order.WalletEarningsSummary; ws != nil {
		// nil means "no wallet data available", which callers must render
		// differently from "all zero".
		result.Wallet = &WalletSummaryView{
			Total:     utils.SafeNumber(ws.Total),
			Frozen:    utils.SafeNumber(ws.Frozen),
			Available: utils.SafeNumber(ws.Available),
		}
	}

	result.Hint = buildOrderHint(order, result.SettlementTotal, result.Wallet)

	for _, h := range order.ReconcileHintByUser {
		if h == nil {
			continue
		}
		result.UserRows = append(result.UserRows, buildUserRow(h))
	}

	return result
}

func buildOrderHint(order *Order, settlementTotal float64, wallet *WalletSummaryView) *ReconcileHintView {
	if hint := order.ReconcileHint; hint != nil {
		// Backend-supplied hint wins; only coerce the numbers.
		return &ReconcileHintView{
			Status:          ReconcileStatus(strings.TrimSpace(utils.DereferencePtr(hint.Status))),
			SettlementTotal: utils.SafeNumber(hint.SettlementTotal),
			WalletTotal:     utils.SafeNumber(hint.WalletTotal),
			Diff:            utils.SafeNumber(hint.Diff),
		}
	}
	if wallet == nil {
		return nil
	}

	diff := utils.Round2(wallet.Total - settlementTotal)
	status := ReconcileStatusMismatched
	if settlementRecordCount(order) == 0 && wallet.Total == 0 {
		status = ReconcileStatusEmpty
	} else if diff == 0 {
		status = ReconcileStatusMatched
	}
	return &ReconcileHintView{
		Status:          status,
		SettlementTotal: settlementTotal,
		WalletTotal:     wallet.Total,
		Diff:            diff,
	}
}

func settlementRecordCount(order *Order) int {
	count := 0
	for _, s := range order.Settlements {
		if s != nil {
			count++
		}
	}
	return count
}

func buildUserRow(h *UserReconcileHint) *UserReconcileRow {
	uid := strings.TrimSpace(utils.DereferencePtr(h.UserId))
	if uid == "" {
		uid = "0"
	}
	name := strings.TrimSpace(utils.DereferencePtr(h.Name))
	if name == "" {
		name = "-"
	}

	settlementTotal := utils.SafeNumber(h.SettlementTotal)

	// walletNet reads the dedicated field first and falls back to the legacy
	// walletTotal, which upstream overloaded to mean "net".
	walletNet := utils.SafeNumber(h.WalletNet)
	if h.WalletNet == nil {
		walletNet = utils.SafeNumber(h.WalletTotal)
	}
	walletIn := utils.SafeNumber(h.WalletIn)
	walletOut := utils.SafeNumber(h.WalletOut)

	diff := utils.Round2(walletNet - settlementTotal)
	if h.Diff != nil {
		diff = utils.SafeFloat(*h.Diff)
	}

	status := ReconcileStatus(strings.TrimSpace(utils.DereferencePtr(h.Status)))
	if status == "" {
		switch {
		case settlementTotal == 0 && walletNet == 0 && walletIn == 0 && walletOut == 0:
			status = ReconcileStatusEmpty
		case diff == 0:
			status = ReconcileStatusMatched
		default:
			status = ReconcileStatusMismatched
		}
	}

	return &UserReconcileRow{
		UserId:          uid,
		Name:            name,
		SettlementTotal: settlementTotal,
		WalletNet:       walletNet,
		WalletTotal:     walletNet,
		WalletIn:        walletIn,
		WalletOut:       walletOut,
		Diff:            diff,
		Status:          status,
	}
}
