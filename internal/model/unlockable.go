package model

// Unlockable is a flag a player can earn.  Temp unlockables are wiped by
// the game server on season reset.  Deleting an unlockable cascades to the
// matching playerdata_unlockables rows.
type Unlockable struct {
	ID   string `json:"id"`
	Temp bool   `json:"temp"`
}
