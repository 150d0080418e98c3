package model

// Fishing is a catchable fish definition.  Regions is a comma-separated
// list of region names where the fish can be caught; empty means anywhere.
type Fishing struct {
	ID      string `json:"id"`
	Rarity  string `json:"rarity"`
	Regions string `json:"regions"`
}
