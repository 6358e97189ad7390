package api

// Links is the HAL navigation block returned by paginated endpoints.
type Links struct {
	Next Link `json:"next"`
}

type Link struct {
	Href string `json:"href"`
}
