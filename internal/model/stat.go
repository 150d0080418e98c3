package model

// Stat is a tracked player statistic.  Max 0 means unbounded.
type Stat struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Max  int    `json:"max"`
}
