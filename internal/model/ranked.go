package model

// RankedResult is a SchoolRecord augmented with the derived ranking fields.
// DistanceRank is a sort-only proxy: larger means nearer, it is not a position.
type RankedResult struct {
	SchoolRecord
	DistanceKM         float64 `json:"distance_km"`
	HonorsRate         float64 `json:"honors_rate"`
	SuccessRatePct     float64 `json:"success_rate_pct"`
	DistanceRank       float64 `json:"distance_rank"`
	DepartmentPriority int     `json:"department_priority"`
}
