package workflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/peiplay/console-core/config"
	"github.com/peiplay/console-core/models"
	"github.com/peiplay/console-core/utils"
)

// Logged runners composing the pure model computations for console actions.
// The computation itself stays side-effect free; logging and correlation ids
// live only in this layer.

// RunOrderReconcile computes the reconcile view for one order and emits a
// structured completion log. Returns the result and the correlation id used.
func RunOrderReconcile(ctx context.Context, cfg *config.AppConfig, logger *logrus.Logger, order *models.Order) (*models.OrderReconcileResult, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	cid, ok := utils.GetCorrelationIdFromContext(ctx)
	if !ok || cid == "" {
		cid = uuid.NewString()
	}

	result := models.BuildOrderReconcile(order)

	if logger != nil {
		fields := logrus.Fields{
			"correlation_id":   cid,
			"settlement_total": result.SettlementTotal,
			"user_rows":        len(result.UserRows),
			"has_wallet":       result.Wallet != nil,
		}
		if cfg != nil {
			fields["app"] = cfg.AppName
		}
		if order != nil {
			fields["order_id"] = order.ID
		}
		if result.Hint != nil {
			fields["status"] = string(result.Hint.Status)
			fields["diff"] = result.Hint.Diff
		}
		if operatorId, ok := utils.GetOperatorIdFromContext(ctx); ok {
			fields["operator_id"] = operatorId
		}
		logger.WithFields(fields).Info("order reconcile computed")
	}

	return result, cid
}

// RunRepairPreview translates a wallet-repair plan for CS review and emits a
// structured completion log with the summary counters.
func RunRepairPreview(ctx context.Context, cfg *config.AppConfig, logger *logrus.Logger, resp *models.RepairPlanResponse) (*models.RepairPlanView, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	cid, ok := utils.GetCorrelationIdFromContext(ctx)
	if !ok || cid == "" {
		cid = uuid.NewString()
	}

	view := models.TranslateRepairPlan(resp)

	if logger != nil {
		fields := logrus.Fields{
			"correlation_id":     cid,
			"rows":               len(view.Rows),
			"changed_count":      view.Summary.ChangedCount,
			"blocked_count":      view.Summary.BlockedCount,
			"affected_count":     view.Summary.AffectedCount,
			"total_delta_income": view.Summary.TotalDeltaIncome,
			"total_delta_wallet": view.Summary.TotalDeltaWallet,
		}
		if cfg != nil {
			fields["app"] = cfg.AppName
		}
		if operatorId, ok := utils.GetOperatorIdFromContext(ctx); ok {
			fields["operator_id"] = operatorId
		}
		logger.WithFields(fields).Info("repair preview translated")
	}

	return view, cid
}
