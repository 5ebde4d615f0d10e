package model

const (
	UserEventCreate = "CREATE"
	UserEventDelete = "DELETE"
)

// UserEvent is published to the user-event topic, keyed by email.
type UserEvent struct {
	Operation string `json:"operation"`
	Email     string `json:"email"`
}
