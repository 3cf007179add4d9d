package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the batch reports filterable by document or page.
const (
	FieldDocument   = "document"
	FieldPage       = "page"
	FieldCount      = "count"
	FieldSkipped    = "skipped_rows"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldOutputFile = "output_file"
	FieldProfile    = "profile"
	FieldProgress   = "progress"
)
