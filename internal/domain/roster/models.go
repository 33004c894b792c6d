package roster

// Team is a locally managed roster team. PlayerIDs holds externally sourced
// player ids in assignment order; it is mutated only through the roster store
// operations and never contains duplicates.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	PlayerIDs []int  `json:"playerIds"`
}

// State is the full serialized roster shape: the team collection plus the
// player->team assignment index. The two are updated together by every
// mutation; no intermediate state where they disagree is observable.
type State struct {
	Teams      []Team         `json:"teams"`
	PlayerTeam map[int]string `json:"playerTeam"`
}

// EmptyState returns the default state used when nothing has been persisted
// yet or the persisted slot could not be parsed.
func EmptyState() State {
	return State{Teams: []Team{}, PlayerTeam: map[int]string{}}
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing internal slices and maps.
func (s State) Clone() State {
	out := State{
		Teams:      make([]Team, len(s.Teams)),
		PlayerTeam: make(map[int]string, len(s.PlayerTeam)),
	}
	for i, t := range s.Teams {
		out.Teams[i] = t.Clone()
	}
	for pid, tid := range s.PlayerTeam {
		out.PlayerTeam[pid] = tid
	}
	return out
}

// Clone returns a copy of the team with its own PlayerIDs slice.
func (t Team) Clone() Team {
	out := t
	out.PlayerIDs = make([]int, len(t.PlayerIDs))
	copy(out.PlayerIDs, t.PlayerIDs)
	return out
}
