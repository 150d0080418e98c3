package model

// Channel is a chat channel definition.  Radius 0 means global.
type Channel struct {
	Name       string `json:"name"`
	Prefix     string `json:"prefix"`
	Color      string `json:"color"`
	Radius     int    `json:"radius"`
	Permission string `json:"permission"`
}
