package types

// DisplaySnapshot is the render-only projection of a SessionState.
type DisplaySnapshot struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}
