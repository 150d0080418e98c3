package model

// Interaction is an in-world interactable.  The row itself only carries the
// key; behavior lives in the child collections, each keyed by an integer
// sequence scoped to the parent interaction.
type Interaction struct {
	ID string `json:"id"`
}

// InteractionAction is one action entry of an interaction.  Actions holds
// the plugin's action script as raw text.
type InteractionAction struct {
	InteractionID string `json:"interaction_id"`
	ActionID      int    `json:"action_id"`
	MatchType     string `json:"match_type"`
	Actions       string `json:"actions"`
}

// InteractionParticle describes a particle emitter attached to an interaction.
type InteractionParticle struct {
	InteractionID string  `json:"interaction_id"`
	ParticleID    int     `json:"particle_id"`
	Particle      string  `json:"particle"`
	Count         int     `json:"count"`
	OffsetX       float64 `json:"offset_x"`
	OffsetY       float64 `json:"offset_y"`
	OffsetZ       float64 `json:"offset_z"`
}

// InteractionHologram is a floating text attached to an interaction.
// Lines holds newline-separated hologram lines.
type InteractionHologram struct {
	InteractionID string `json:"interaction_id"`
	HologramID    int    `json:"hologram_id"`
	Lines         string `json:"lines"`
}
