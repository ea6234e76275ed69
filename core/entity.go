package core

// Entity is a unique identifier for a game object
// Zero is never assigned and marks an empty slot
type Entity uint64
