package model

// PlayerData is the per-player row in the gameplay store, keyed by the
// player's Minecraft uuid.  LastOnline is stored as the plugin writes it
// (opaque text) rather than parsed into a time.Time.
type PlayerData struct {
	UUID       string `json:"uuid"`
	Nickname   string `json:"nickname"`
	LastOnline string `json:"last_online"`
}

// PlayerUnlockable marks an unlockable as earned by a player.
type PlayerUnlockable struct {
	UUID         string `json:"uuid"`
	UnlockableID string `json:"unlockable_id"`
}

// PlayerCurrency is a player's balance in one currency.
type PlayerCurrency struct {
	UUID       string  `json:"uuid"`
	CurrencyID string  `json:"currency_id"`
	Amount     float64 `json:"amount"`
}
