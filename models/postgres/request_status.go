package postgres

// Lifecycle shared by friend requests and game-room invitations.
const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusRefused  = "REFUSED"
)
