package catalog

// webfontsResponse is the body of GET /webfonts/v1/webfonts
type webfontsResponse struct {
	Kind  string        `json:"kind"`
	Items []webfontItem `json:"items"`
}

type webfontItem struct {
	Family   string   `json:"family"`
	Category string   `json:"category"`
	Variants []string `json:"variants,omitempty"`
}
