package model

// Condition is one entry of a condition list attached to a gameplay parent
// (an interaction, a warp, a GUI slot...).  ParentType names the owning
// resource category, ParentID its natural key; ConditionID is a sequence
// local to that parent.
type Condition struct {
	ParentType  string `json:"parent_type"`
	ParentID    string `json:"parent_id"`
	ConditionID int    `json:"condition_id"`
	Type        string `json:"type"`
	Key         string `json:"key"`
	Value       string `json:"value"`
}
