package catalog

// Catalog structure for catalog.json
type Document struct {
	Styles []Style `json:"styles"`
}

// A Style is one product variant (a color/pattern) and the size run it is
// sold in. Sizes are short labels: I, T, S, M, L, XL, XXL, ONESIZE.
type Style struct {
	ID    string   `json:"id"`
	Sizes []string `json:"sizes"`
}
