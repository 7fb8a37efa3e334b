package availability

// Map is the working availability state: style id -> size label -> in stock.
type Map map[string]map[string]bool

// Overrides is a partial override layer as read from JSON. A style may be
// absent (no override) or present with only some sizes set. Values are
// boolean-ish and get coerced with Truthy.
type Overrides map[string]map[string]interface{}

// Document is what gets written to availability.json.
type Document struct {
	UpdatedAt string `json:"updatedAt"`
	Styles    Map    `json:"styles"`
}
