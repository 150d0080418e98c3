package model

// Citem is a custom item definition.  Lore holds newline-separated lines.
type Citem struct {
	ID              string `json:"id"`
	Material        string `json:"material"`
	DisplayName     string `json:"display_name"`
	Lore            string `json:"lore"`
	CustomModelData int    `json:"custom_model_data"`
	Undroppable     bool   `json:"undroppable"`
	Unusable        bool   `json:"unusable"`
	Placeable       bool   `json:"placeable"`
}
