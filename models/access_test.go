package models_test

import (
	"testing"

	"github.com/peiplay/console-core/models"
)

func TestBuildAccessGrantsMappedCapabilities(t *testing.T) {
	access := models.BuildAccess([]string{
		"order:view",
		"wallet:repair",
		"order:view", // duplicates are harmless
		"withdraw:approve",
	})

	if !access.CanViewOrder || !access.CanRepairWallet || !access.CanApproveWithdraw {
		t.Fatalf("granted capabilities missing: %+v", access)
	}
	if access.CanManageStaff || access.CanManageRole || access.CanDispatchOrder ||
		access.CanSettleOrder || access.CanViewWallet {
		t.Fatalf("ungranted capabilities set: %+v", access)
	}
}

func TestBuildAccessIgnoresUnknownAndBlankKeys(t *testing.T) {
	access := models.BuildAccess([]string{"", "  ", "nonsense:key", "order:dispatch"})

	if !access.CanDispatchOrder {
		t.Fatalf("order:dispatch not granted: %+v", access)
	}
	if access != (models.Access{CanDispatchOrder: true}) {
		t.Fatalf("unexpected grants: %+v", access)
	}
}

func TestBuildAccessEmptySet(t *testing.T) {
	if access := models.BuildAccess(nil); access != (models.Access{}) {
		t.Fatalf("empty permission set granted: %+v", access)
	}
}
