package domain

import "time"

// StageType identifies the kind of mint stage
type StageType int32

const (
	// StageTypeAllowlist is a stage restricted to allowlisted addresses
	StageTypeAllowlist StageType = 1
	// StageTypePublic is a stage open to everyone
	StageTypePublic StageType = 2
)

// SaleStatus groups collections by the outcome of their sale
type SaleStatus string

const (
	// SaleStatusOngoing means the deadline has not passed and the sale has not completed
	SaleStatusOngoing SaleStatus = "ongoing"
	// SaleStatusSuccessful means the sale completed (minted out before the deadline)
	SaleStatusSuccessful SaleStatus = "successful"
	// SaleStatusFailed means the deadline passed without completion
	SaleStatusFailed SaleStatus = "failed"
)

// ClassifySale derives the sale status from the completion flag and deadline.
// saleDeadline is unix seconds.
func ClassifySale(saleCompleted bool, saleDeadline uint64, now time.Time) SaleStatus {
	if saleCompleted {
		return SaleStatusSuccessful
	}
	if saleDeadline > 0 && now.Unix() >= int64(saleDeadline) {
		return SaleStatusFailed
	}
	return SaleStatusOngoing
}
