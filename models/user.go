package models

// User is the signed-in customer. It is replaced or cleared as a whole.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Phone  string `json:"phone"`
	Level  string `json:"level"`
}
