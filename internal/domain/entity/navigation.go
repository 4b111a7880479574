package entity

// NavigationOrigin tags who caused a change of the current location.
type NavigationOrigin string

const (
	// OriginInitial is the decode performed when a session starts.
	OriginInitial NavigationOrigin = "initial"
	// OriginProgrammatic marks writes made by the application itself.
	OriginProgrammatic NavigationOrigin = "programmatic"
	// OriginExternal marks back/forward or any user-driven location change.
	OriginExternal NavigationOrigin = "external"
)

type NavigationEvent struct {
	Origin   NavigationOrigin
	Location string
}
