package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldSource     = "source"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldPage       = "page"
	FieldCount      = "count"
	FieldTeamID     = "team_id"
	FieldPlayerID   = "player_id"
	FieldDurationMS = "duration_ms"
)
