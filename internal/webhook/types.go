package webhook

// SecurityConfig controls webhook request validation.
type SecurityConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// SheetChangePayload is the push notification body a sheet-watching
// automation (e.g. an Apps Script trigger) posts when the source changes.
type SheetChangePayload struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	ChangeType    string `json:"change_type"` // e.g. "EDIT", "INSERT_ROW"
	ChangedBy     string `json:"changed_by,omitempty"`
}
