// pkg/api/terms_v1.go
package api

// TermV1 is the stable JSON/JSONL schema for one sequence term.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TermV1 struct {
	Index int   `json:"index"`
	Value int64 `json:"value"`
	Width int   `json:"width"` // bits the value was computed in
}
