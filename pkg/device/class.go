package device

// Class is the coarse device category used for routing.
type Class string

const (
	// Mobile routes the visitor to the mobile variant (phones and tablets).
	Mobile Class = "mobile"

	// Desktop routes the visitor to the desktop variant.
	Desktop Class = "desktop"
)

// DefaultBreakpoint is the widest viewport, in CSS pixels, still treated as mobile.
const DefaultBreakpoint = 768

// String implements fmt.Stringer.
func (c Class) String() string { return string(c) }

// Valid reports whether c is one of the known classes.
func (c Class) Valid() bool { return c == Mobile || c == Desktop }

// ParseClass converts s into a Class. Unknown values report false.
func ParseClass(s string) (Class, bool) {
	switch Class(s) {
	case Mobile:
		return Mobile, true
	case Desktop:
		return Desktop, true
	default:
		return "", false
	}
}

// Context carries the environment signals read once per page load.
type Context struct {
	UserAgent     string
	ViewportWidth int
}
