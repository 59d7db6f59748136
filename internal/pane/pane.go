package pane

// Pane identifies a focusable region of the interface.
type Pane int

const (
	None Pane = iota
	Home
	Channels
	Teams
	Users
	Messages
	Input
	Search
)

var names = map[Pane]string{
	None:     "none",
	Home:     "home",
	Channels: "channels",
	Teams:    "teams",
	Users:    "users",
	Messages: "messages",
	Input:    "input",
	Search:   "search",
}

func (p Pane) String() string {
	if name, ok := names[p]; ok {
		return name
	}
	return "unknown"
}

// Direction is a directional key applied to the hovered pane.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

type edge struct {
	from Pane
	dir  Direction
}

var adjacency = map[edge]Pane{
	{Teams, Down}:     Channels,
	{Teams, Right}:    Input,
	{Channels, Up}:    Teams,
	{Channels, Down}:  Users,
	{Channels, Right}: Input,
	{Users, Up}:       Channels,
	{Users, Right}:    Input,
	{Input, Up}:       Channels,
	{Input, Left}:     Users,
}

// Next returns the pane reached from p in direction d. Unmapped
// combinations return p unchanged.
func Next(p Pane, d Direction) Pane {
	if next, ok := adjacency[edge{p, d}]; ok {
		return next
	}
	return p
}
