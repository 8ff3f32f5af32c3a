package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/peiplay/console-core/utils"
)

// Translation of a backend wallet-repair plan into rows customer support can
// read. Presentation-only: nothing here is persisted, the view is recomputed
// on every call.

type RepairWalletPreview struct {
	CurrentEffect  *float64 `json:"currentEffect"`
	ExpectedEffect *float64 `json:"expectedEffect"`
	BlockedReason  *string  `json:"blockedReason"`
}

type RepairPreview struct {
	DispatchId     *string              `json:"dispatchId"`
	DispatchRound  *int                 `json:"dispatchRound"`
	UserId         *string              `json:"userId"`
	SettlementType *string              `json:"settlementType"`
	Status         *string              `json:"status"`
	OldFinal       *float64             `json:"oldFinal"`
	ExpectedFinal  *float64             `json:"expectedFinal"`
	DeltaFinal     *float64             `json:"deltaFinal"`
	Wallet         *RepairWalletPreview `json:"wallet"`
}

type RepairPlanEntry struct {
	Preview *RepairPreview `json:"preview"`
}

type RepairPlanResponse struct {
	Plan []*RepairPlanEntry `json:"plan"`
}

// CsDiffRow is one repair-plan line as shown to customer support. Key is
// stable across re-renders (dispatchId_round_userId_settlementType).
type CsDiffRow struct {
	Key       string `json:"key"`
	UserId    string `json:"userId"`
	RoundText string `json:"roundText"`

	OldIncome   float64 `json:"oldIncome"`
	NewIncome   float64 `json:"newIncome"`
	DeltaIncome float64 `json:"deltaIncome"`

	WalletBefore float64 `json:"walletBefore"`
	WalletAfter  float64 `json:"walletAfter"`
	WalletDelta  float64 `json:"walletDelta"`

	Blocked       bool   `json:"blocked"`
	BlockedReason string `json:"blockedReason"`
	Suggestion    string `json:"suggestion"`
}

type RepairPlanSummary struct {
	ChangedCount  int `json:"changedCount"`
	BlockedCount  int `json:"blockedCount"`
	AffectedCount int `json:"affectedCount"`

	TotalDeltaIncome float64 `json:"totalDeltaIncome"`
	TotalDeltaWallet float64 `json:"totalDeltaWallet"`
}

type RepairPlanView struct {
	Rows    []*CsDiffRow      `json:"rows"`
	Summary RepairPlanSummary `json:"summary"`
}

const (
	csBlockedReasonText     = "该用户钱包当前状态与修复方案生成时的快照不一致，自动修复已拦截，避免资金风险"
	csBlockedSuggestionText = "请联系财务人工核对该用户钱包流水，确认后重新生成修复方案"
	csNoChangeText          = "数据一致，无需处理"
	csAutoRepairText        = "存在差异，可自动修复，确认后执行"
)

// TranslateRepairPlan converts a repair-plan response into CS-readable rows
// plus summary counters. Never fails: a nil or empty plan yields an empty view.
func TranslateRepairPlan(resp *RepairPlanResponse) *RepairPlanView {
	view := &RepairPlanView{Rows: []*CsDiffRow{}}
	if resp == nil {
		return view
	}

	for _, entry := range resp.Plan {
		if entry == nil || entry.Preview == nil {
			continue
		}
		row := translatePreview(entry.Preview)
		view.Rows = append(view.Rows, row)

		changed := row.DeltaIncome != 0 || row.WalletDelta != 0
		if changed {
			view.Summary.ChangedCount++
		}
		if row.Blocked {
			view.Summary.BlockedCount++
		}
		if row.Blocked || changed {
			view.Summary.AffectedCount++
		}
		view.Summary.TotalDeltaIncome += row.DeltaIncome
		view.Summary.TotalDeltaWallet += row.WalletDelta
	}

	return view
}

func translatePreview(p *RepairPreview) *CsDiffRow {
	oldIncome := utils.SafeNumber(p.OldFinal)
	newIncome := utils.SafeNumber(p.ExpectedFinal)

	deltaIncome := newIncome - oldIncome
	if p.DeltaFinal != nil {
		deltaIncome = utils.SafeFloat(*p.DeltaFinal)
	}

	var walletBefore, walletAfter float64
	blockedReason := ""
	if p.Wallet != nil {
		walletBefore = utils.SafeNumber(p.Wallet.CurrentEffect)
		walletAfter = utils.SafeNumber(p.Wallet.ExpectedEffect)
		blockedReason = strings.TrimSpace(utils.DereferencePtr(p.Wallet.BlockedReason))
	}
	// The wallet delta is always computed locally; a backend-sent delta is
	// never trusted for wallet movements.
	walletDelta := walletAfter - walletBefore

	blocked := blockedReason != ""

	row := &CsDiffRow{
		Key:          previewKey(p),
		UserId:       previewUserId(p),
		RoundText:    previewRoundText(p),
		OldIncome:    oldIncome,
		NewIncome:    newIncome,
		DeltaIncome:  deltaIncome,
		WalletBefore: walletBefore,
		WalletAfter:  walletAfter,
		WalletDelta:  walletDelta,
		Blocked:      blocked,
	}

	if blocked {
		// Blocked rows always carry both texts, never blank.
		row.BlockedReason = csBlockedReasonText
		row.Suggestion = csBlockedSuggestionText
	} else if deltaIncome == 0 && walletDelta == 0 {
		row.Suggestion = csNoChangeText
	} else {
		row.Suggestion = csAutoRepairText
	}

	return row
}

func previewUserId(p *RepairPreview) string {
	if id := strings.TrimSpace(utils.DereferencePtr(p.UserId)); id != "" {
		return id
	}
	return "0"
}

func previewRoundStr(p *RepairPreview) string {
	if p.DispatchRound == nil {
		return "-"
	}
	return strconv.Itoa(*p.DispatchRound)
}

func previewRoundText(p *RepairPreview) string {
	statusText := DispatchStatus(strings.TrimSpace(utils.DereferencePtr(p.Status))).DisplayText()
	return fmt.Sprintf("第%s轮（%s）", previewRoundStr(p), statusText)
}

func previewKey(p *RepairPreview) string {
	dispatchId := strings.TrimSpace(utils.DereferencePtr(p.DispatchId))
	if dispatchId == "" {
		dispatchId = "-"
	}
	settlementType := strings.TrimSpace(utils.DereferencePtr(p.SettlementType))
	if settlementType == "" {
		settlementType = "-"
	}
	return fmt.Sprintf("%s_%s_%s_%s", dispatchId, previewRoundStr(p), previewUserId(p), settlementType)
}
