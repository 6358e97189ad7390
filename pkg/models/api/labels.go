package api

// LabelsResponse is the payload of GET /endpoint/labels.
type LabelsResponse struct {
	Labels []Label `json:"labels"`
}

// Label is an endpoint agent label. Color is a hex code, with or without a
// leading '#', and may be empty.
type Label struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	MatchType string `json:"matchType"`
}
