package feed

import "roster-service/internal/domain/players"

// SamplePlayers returns the fixed dataset served in Degraded mode. The ids
// are deliberately high so they are unlikely to collide with live feed ids,
// though dedupe would absorb a collision anyway.
func SamplePlayers() []players.Player {
	return []players.Player{
		{ID: 900001, FirstName: "Marcus", LastName: "Hale", Position: "G", Team: players.TeamRef{ID: 1, FullName: "Atlanta Hawks"}},
		{ID: 900002, FirstName: "Devon", LastName: "Okafor", Position: "F", Team: players.TeamRef{ID: 2, FullName: "Boston Celtics"}},
		{ID: 900003, FirstName: "Luka", LastName: "Petrov", Position: "C", Team: players.TeamRef{ID: 3, FullName: "Brooklyn Nets"}},
		{ID: 900004, FirstName: "Jalen", LastName: "Brooks", Position: "G", Team: players.TeamRef{ID: 4, FullName: "Charlotte Hornets"}},
		{ID: 900005, FirstName: "Tomas", LastName: "Reyes", Position: "F", Team: players.TeamRef{ID: 5, FullName: "Chicago Bulls"}},
		{ID: 900006, FirstName: "Andre", LastName: "Whitfield", Position: "C", Team: players.TeamRef{ID: 6, FullName: "Cleveland Cavaliers"}},
		{ID: 900007, FirstName: "Kofi", LastName: "Mensah", Position: "G", Team: players.TeamRef{ID: 7, FullName: "Dallas Mavericks"}},
		{ID: 900008, FirstName: "Ilya", LastName: "Sokolov", Position: "F", Team: players.TeamRef{ID: 8, FullName: "Denver Nuggets"}},
		{ID: 900009, FirstName: "Trey", LastName: "Lambert", Position: "G-F", Team: players.TeamRef{ID: 9, FullName: "Detroit Pistons"}},
		{ID: 900010, FirstName: "Mateo", LastName: "Silva", Position: "C", Team: players.TeamRef{ID: 10, FullName: "Golden State Warriors"}},
		{ID: 900011, FirstName: "Darius", LastName: "Cole", Position: "G", Team: players.TeamRef{ID: 11, FullName: "Houston Rockets"}},
		{ID: 900012, FirstName: "Emeka", LastName: "Obi", Position: "F", Team: players.TeamRef{ID: 12, FullName: "Indiana Pacers"}},
		{ID: 900013, FirstName: "Rasmus", LastName: "Lind", Position: "C", Team: players.TeamRef{ID: 13, FullName: "LA Clippers"}},
		{ID: 900014, FirstName: "Malik", LastName: "Thornton", Position: "G", Team: players.TeamRef{ID: 14, FullName: "Los Angeles Lakers"}},
		{ID: 900015, FirstName: "Goran", LastName: "Vukovic", Position: "F-C", Team: players.TeamRef{ID: 15, FullName: "Memphis Grizzlies"}},
		{ID: 900016, FirstName: "Isaiah", LastName: "Vance", Position: "G", Team: players.TeamRef{ID: 16, FullName: "Miami Heat"}},
		{ID: 900017, FirstName: "Pavel", LastName: "Novak", Position: "F", Team: players.TeamRef{ID: 17, FullName: "Milwaukee Bucks"}},
		{ID: 900018, FirstName: "Sefu", LastName: "Kamau", Position: "C", Team: players.TeamRef{ID: 18, FullName: "Minnesota Timberwolves"}},
		{ID: 900019, FirstName: "Bryce", LastName: "Delaney", Position: "G", Team: players.TeamRef{ID: 19, FullName: "New Orleans Pelicans"}},
		{ID: 900020, FirstName: "Hugo", LastName: "Marchand", Position: "F", Team: players.TeamRef{ID: 20, FullName: "New York Knicks"}},
	}
}
