package model

// Currency is a server currency definition from the gameplay store.
type Currency struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	Hidden    bool   `json:"hidden"`
}
