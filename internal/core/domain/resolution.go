package domain

// Resolution is the outcome of resolving one cycle's registrations:
// the ordered, deduplicated libraries and the collisions found on the way.
type Resolution struct {
	Libraries  []Library
	Collisions []CollisionEvent
}
