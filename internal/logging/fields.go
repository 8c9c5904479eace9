package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldSport      = "sport"
	FieldTeamID     = "team_id"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
)
