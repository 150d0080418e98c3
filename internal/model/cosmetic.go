package model

// Cosmetic is a visual player cosmetic (prefix, particle trail, ...).
type Cosmetic struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Display     string `json:"display"`
	Description string `json:"description"`
}

// Badge is awarded for achievements and shown on the player profile.
type Badge struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Lore    string `json:"lore"`
}

// Title is a chat title the player can equip.
type Title struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Lore    string `json:"lore"`
}
