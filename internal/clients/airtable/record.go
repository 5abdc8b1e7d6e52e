package airtable

// Record is one table row as returned by the API. Field values keep the loose
// JSON typing (string, float64, bool, []any) and are interpreted by the mapper.
type Record struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

type listRecordsResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}
