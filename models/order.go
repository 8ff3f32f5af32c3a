package models

// Input shapes consumed from the order/settlement/wallet backend. Every
// field is optional; nil or malformed values coerce to safe defaults rather
// than failing at the boundary.

type SettlementUser struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// Settlement is a single user-and-order-scoped income/expense record.
// FinalEarnings is signed: positive means income owed to the user, negative
// means an expense/clawback charged to the user. Exactly zero is a no-op
// record and is excluded from aggregation.
type Settlement struct {
	UserId        *string         `json:"userId"`
	User          *SettlementUser `json:"user"`
	FinalEarnings *float64        `json:"finalEarnings"`
}

// WalletEarningsSummary is authoritative wallet state when present.
// total = frozen + available is the wallet system's invariant, not ours.
type WalletEarningsSummary struct {
	Total     *float64 `json:"total"`
	Frozen    *float64 `json:"frozen"`
	Available *float64 `json:"available"`
}

type OrderReconcileHint struct {
	Status          *string  `json:"status"`
	SettlementTotal *float64 `json:"settlementTotal"`
	WalletTotal     *float64 `json:"walletTotal"`
	Diff            *float64 `json:"diff"`
}

// UserReconcileHint carries per-participant wallet-vs-settlement figures.
// WalletTotal is a legacy alias that upstream overloaded to mean "net";
// WalletNet is read first, falling back to WalletTotal.
type UserReconcileHint struct {
	UserId          *string  `json:"userId"`
	Name            *string  `json:"name"`
	SettlementTotal *float64 `json:"settlementTotal"`
	WalletNet       *float64 `json:"walletNet"`
	WalletTotal     *float64 `json:"walletTotal"`
	WalletIn        *float64 `json:"walletIn"`
	WalletOut       *float64 `json:"walletOut"`
	Diff            *float64 `json:"diff"`
	Status          *string  `json:"status"`
}

type Order struct {
	ID                    string                 `json:"id"`
	PaidAmount            *float64               `json:"paidAmount"`
	IsGifted              *bool                  `json:"isGifted"`
	Settlements           []*Settlement          `json:"settlements"`
	WalletEarningsSummary *WalletEarningsSummary `json:"walletEarningsSummary"`
	ReconcileHint         *OrderReconcileHint    `json:"reconcileHint"`
	ReconcileHintByUser   []*UserReconcileHint   `json:"reconcileHintByUser"`
}
