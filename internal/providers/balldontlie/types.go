package balldontlie

type playersResponse struct {
	Data []playerResponse `json:"data"`
	Meta metaResponse     `json:"meta"`
}

type playerResponse struct {
	ID        int          `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Position  string       `json:"position"`
	Team      teamResponse `json:"team"`
}

type teamResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
}

type metaResponse struct {
	TotalPages int `json:"total_pages"`
	PerPage    int `json:"per_page"`
}
