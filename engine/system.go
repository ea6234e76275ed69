package engine

// System is a per-frame update stage, run in ascending Priority order
type System interface {
	Update()
	Priority() int
}

// Resettable systems drop internal state when the world reloads
type Resettable interface {
	Init()
}
