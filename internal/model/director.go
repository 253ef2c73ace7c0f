package model

// Director is referenced by movies and only ever read by this service
type Director struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
