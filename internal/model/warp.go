package model

// Warp is a named teleport destination.
type Warp struct {
	ID         string  `json:"id"`
	World      string  `json:"world"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Yaw        float64 `json:"yaw"`
	Pitch      float64 `json:"pitch"`
	Permission string  `json:"permission"`
}
