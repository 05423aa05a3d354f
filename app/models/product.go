package models

// Chapter is one section of a downloadable playbook, used for the ebook
// table of contents.
type Chapter struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// Product is a static catalog entry. The catalog is compiled in; products are
// not stored and have no lifecycle.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Level       int       `json:"level"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description"`
	Features    []string  `json:"features,omitempty"`
	Chapters    []Chapter `json:"chapters,omitempty"`
}
