package models

type ReconcileStatus string

const (
	ReconcileStatusMatched    ReconcileStatus = "MATCHED"
	ReconcileStatusMismatched ReconcileStatus = "MISMATCHED"
	ReconcileStatusEmpty      ReconcileStatus = "EMPTY"
)

type DispatchStatus string

const (
	DispatchStatusCompleted DispatchStatus = "COMPLETED"
	DispatchStatusArchived  DispatchStatus = "ARCHIVED"
)

// DisplayText renders the CS-facing status label. Unknown statuses pass
// through raw so a new backend status is still visible to support staff.
func (s DispatchStatus) DisplayText() string {
	switch s {
	case DispatchStatusCompleted:
		return "已结单"
	case DispatchStatusArchived:
		return "已存单"
	case "":
		return "-"
	default:
		return string(s)
	}
}
