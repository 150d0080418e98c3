package model

// GUI is an inventory menu definition.  Size is the inventory slot count
// and must be a multiple of 9.
type GUI struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Size  int    `json:"size"`
}

// GUISlot is one slot entry of a GUI, keyed by (gui_id, slot).
type GUISlot struct {
	GUIID       string `json:"gui_id"`
	Slot        int    `json:"slot"`
	Material    string `json:"material"`
	DisplayName string `json:"display_name"`
	Lore        string `json:"lore"`
	Actions     string `json:"actions"`
}
