package render

// Renderer writes a command result to its output
type Renderer[T any] interface {
	Render(result T) error
}
