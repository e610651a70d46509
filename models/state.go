package models

// PersistedState is the subset of the store written to durable storage.
// The catalog and the loading/error flags are never part of it.
type PersistedState struct {
	Cart      []CartLine `json:"cart"`
	Favorites []string   `json:"favorites"`
	Orders    []Order    `json:"orders"`
	User      *User      `json:"user"`
}
