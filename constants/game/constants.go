package game

/*
Game related constants shared by the REST layer and the realtime gateway.
*/
const (
	// Morpion is the only game currently playable in a room
	Morpion = "morpion"

	// MaxPlayersMorpion is the number of connected players needed to start a game
	MaxPlayersMorpion = 2
)
