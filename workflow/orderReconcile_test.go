package workflow_test

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/peiplay/console-core/config"
	"github.com/peiplay/console-core/models"
	"github.com/peiplay/console-core/utils"
	"github.com/peiplay/console-core/workflow"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRunOrderReconcileGeneratesCorrelationId(t *testing.T) {
	order := &models.Order{
		ID:         "ORD-1",
		PaidAmount: utils.NewFloat(100),
		Settlements: []*models.Settlement{
			{UserId: utils.NewString("u1"), FinalEarnings: utils.NewFloat(60)},
		},
	}

	result, cid := workflow.RunOrderReconcile(nil, nil, quietLogger(), order)
	if result == nil {
		t.Fatalf("result is nil")
	}
	if cid == "" {
		t.Fatalf("correlation id not generated")
	}
	if result.Earnings.PlatformSuggested != 40 {
		t.Fatalf("platformSuggested = %v, want 40", result.Earnings.PlatformSuggested)
	}
}

func TestRunOrderReconcileKeepsContextCorrelationId(t *testing.T) {
	ctx := utils.SetCorrelationIdInContext(context.Background(), "cid-123")
	ctx = utils.SetOperatorIdInContext(ctx, "op-9")

	cfg := &config.AppConfig{AppName: "peiplay-console-test", APIBaseURL: "https://api.example.com", PageSizeDefault: 20}
	_, cid := workflow.RunOrderReconcile(ctx, cfg, quietLogger(), &models.Order{ID: "ORD-2"})
	if cid != "cid-123" {
		t.Fatalf("correlation id = %q, want cid-123", cid)
	}
}

func TestRunRepairPreview(t *testing.T) {
	resp := &models.RepairPlanResponse{
		Plan: []*models.RepairPlanEntry{
			{Preview: &models.RepairPreview{
				OldFinal:      utils.NewFloat(10),
				ExpectedFinal: utils.NewFloat(12),
			}},
		},
	}

	view, cid := workflow.RunRepairPreview(context.Background(), nil, nil, resp)
	if view == nil || cid == "" {
		t.Fatalf("view=%v cid=%q", view, cid)
	}
	if view.Summary.ChangedCount != 1 {
		t.Fatalf("changedCount = %d, want 1", view.Summary.ChangedCount)
	}
}
