package entity

// Player holds the marker a participant places on the board. It is never mutated after creation.
type Player struct {
	mark Cell
}

// NewPlayer creates a player placing mark.
func NewPlayer(mark Cell) Player {
	return Player{mark: mark}
}

func (that Player) Symbol() Cell {
	return that.mark
}
