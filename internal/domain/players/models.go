package players

// Player is an externally sourced, read-only record (balldontlie-aligned).
// Players are never created or edited locally; they are accumulated from feed
// pages, deduplicated by ID, and kept for the rest of the session.
type Player struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  string  `json:"position"`
	Team      TeamRef `json:"team"`
}

// TeamRef is the player's upstream team affiliation. It is display-only and
// shares no identifiers with locally managed roster teams; the two namespaces
// are kept as distinct types so they cannot be conflated.
type TeamRef struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
}

// FullName returns the player's display name.
func (p Player) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
