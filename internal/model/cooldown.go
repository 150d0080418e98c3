package model

// Cooldown gates an interaction for a number of seconds.  The start/end
// interaction ids fire when the cooldown begins and expires.
type Cooldown struct {
	ID               string `json:"id"`
	Duration         int    `json:"duration"`
	StartInteraction string `json:"start_interaction"`
	EndInteraction   string `json:"end_interaction"`
}
