package game

// Direction is a cardinal exit from a room.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Floor identifies the vertical layer a room sits on.
type Floor string

const (
	FloorGround   Floor = "ground"
	FloorUpper    Floor = "upper"
	FloorBasement Floor = "basement"
)

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	switch d {
	case North, South, East, West:
		return true
	}
	return false
}

// Opposite returns the facing direction. Invalid input returns itself.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// Offset returns the grid delta for one step in d: north is +y, east is +x.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}
