package types

// Category groups service providers by domain.
type Category string

const (
	// CategoryCalculus covers the numerical-calculus engine tools.
	CategoryCalculus Category = "calculus"
	// CategoryScientific covers the scientific-calculator function surface.
	CategoryScientific Category = "scientific"
)

// Service describes a provider: its identity, what it can do, and the
// tools it exposes.
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool is a single callable operation within a service.
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter documents one tool input.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Result is the uniform execution envelope. Degraded numerical outcomes
// still succeed; the "status" entry in Data carries the accuracy tag.
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}
