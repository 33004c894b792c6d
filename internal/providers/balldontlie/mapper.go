package balldontlie

import "roster-service/internal/domain/players"

func mapPlayer(in playerResponse) players.Player {
	return players.Player{
		ID:        in.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Position:  in.Position,
		Team: players.TeamRef{
			ID:       in.Team.ID,
			FullName: in.Team.FullName,
		},
	}
}
