package models

// Course is a Booqable location exposed to the SPA as a golf course.
type Course struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
