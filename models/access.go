package models

import (
	"strings"

	"github.com/peiplay/console-core/utils"
)

// Capability-flag mapping for the console. A session's flat permission-key
// set resolves to named flags through one static table; callers evaluate it
// once per session, not per render.

type Capability string

const (
	CapManageStaff     Capability = "manageStaff"
	CapManageRole      Capability = "manageRole"
	CapViewOrder       Capability = "viewOrder"
	CapDispatchOrder   Capability = "dispatchOrder"
	CapSettleOrder     Capability = "settleOrder"
	CapViewWallet      Capability = "viewWallet"
	CapApproveWithdraw Capability = "approveWithdraw"
	CapRepairWallet    Capability = "repairWallet"
)

// capabilityPermissionKeys is the single source of truth for which backend
// permission key unlocks which console capability.
var capabilityPermissionKeys = map[Capability]string{
	CapManageStaff:     "staff:manage",
	CapManageRole:      "role:manage",
	CapViewOrder:       "order:view",
	CapDispatchOrder:   "order:dispatch",
	CapSettleOrder:     "order:settle",
	CapViewWallet:      "wallet:view",
	CapApproveWithdraw: "withdraw:approve",
	CapRepairWallet:    "wallet:repair",
}

type Access struct {
	CanManageStaff     bool `json:"canManageStaff"`
	CanManageRole      bool `json:"canManageRole"`
	CanViewOrder       bool `json:"canViewOrder"`
	CanDispatchOrder   bool `json:"canDispatchOrder"`
	CanSettleOrder     bool `json:"canSettleOrder"`
	CanViewWallet      bool `json:"canViewWallet"`
	CanApproveWithdraw bool `json:"canApproveWithdraw"`
	CanRepairWallet    bool `json:"canRepairWallet"`
}

// BuildAccess resolves a session's permission keys into capability flags.
// Unknown keys are ignored; blank keys never grant anything.
func BuildAccess(permissionKeys []string) Access {
	granted := make(map[string]bool, len(permissionKeys))
	for _, key := range utils.UniqueSlice(permissionKeys) {
		key = strings.TrimSpace(key)
		if key != "" {
			granted[key] = true
		}
	}

	has := func(c Capability) bool {
		return granted[capabilityPermissionKeys[c]]
	}

	return Access{
		CanManageStaff:     has(CapManageStaff),
		CanManageRole:      has(CapManageRole),
		CanViewOrder:       has(CapViewOrder),
		CanDispatchOrder:   has(CapDispatchOrder),
		CanSettleOrder:     has(CapSettleOrder),
		CanViewWallet:      has(CapViewWallet),
		CanApproveWithdraw: has(CapApproveWithdraw),
		CanRepairWallet:    has(CapRepairWallet),
	}
}
