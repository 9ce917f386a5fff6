package handlers

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// SwaggerMetadata is used to represent JSON metadata in Swagger docs
type SwaggerMetadata map[string]interface{}

// textValue wraps an optional string column value. An empty string is
// stored as NULL.
func textValue(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// dateValue wraps a date column value.
func dateValue(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: !t.IsZero()}
}

// unixOrZero converts a nullable timestamp to epoch seconds for API
// responses.
func unixOrZero(ts pgtype.Timestamptz) int64 {
	if !ts.Valid {
		return 0
	}
	return ts.Time.Unix()
}
