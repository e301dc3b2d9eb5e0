package domains

// Def declares a named bounded domain. Both bounds are inclusive.
type Def struct {
	Min         int64  `json:"min" yaml:"min"`
	Max         int64  `json:"max" yaml:"max"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
