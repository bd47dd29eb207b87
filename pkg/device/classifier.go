package device

// Classifier maps a Context to a Class. The zero value is not usable; use
// NewClassifier. A Classifier is immutable and safe for concurrent use.
type Classifier struct {
	breakpoint int
	mobile     keywordSet
	tablet     keywordSet
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithBreakpoint sets the widest viewport still classified as mobile.
// Non-positive values are ignored.
func WithBreakpoint(px int) Option {
	return func(c *Classifier) {
		if px > 0 {
			c.breakpoint = px
		}
	}
}

// WithMobileTokens replaces the mobile token set.
func WithMobileTokens(tokens ...string) Option {
	return func(c *Classifier) {
		c.mobile = newKeywordSet(tokens...)
	}
}

// WithTabletTokens replaces the tablet token set.
func WithTabletTokens(tokens ...string) Option {
	return func(c *Classifier) {
		c.tablet = newKeywordSet(tokens...)
	}
}

// NewClassifier returns a classifier with the default token sets and breakpoint.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		breakpoint: DefaultBreakpoint,
		mobile:     newKeywordSet(defaultMobileTokens...),
		tablet:     newKeywordSet(defaultTabletTokens...),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Breakpoint returns the configured mobile breakpoint in pixels.
func (c *Classifier) Breakpoint() int { return c.breakpoint }

// Classify returns Mobile when the user agent carries a mobile or tablet
// token, or when the viewport is at most the breakpoint wide.
func (c *Classifier) Classify(ctx Context) Class {
	if _, ok := c.Match(ctx.UserAgent); ok {
		return Mobile
	}
	if ctx.ViewportWidth <= c.breakpoint {
		return Mobile
	}
	return Desktop
}

// ClassifyAgent classifies by user agent alone. The bool is false when no
// token matched and the caller still needs a viewport width to decide.
func (c *Classifier) ClassifyAgent(ua string) (Class, bool) {
	if _, ok := c.Match(ua); ok {
		return Mobile, true
	}
	return "", false
}

// Match reports the first mobile or tablet token found in ua.
func (c *Classifier) Match(ua string) (string, bool) {
	if ua == "" {
		return "", false
	}
	lowerUA := fold(ua)
	if token, ok := c.mobile.match(lowerUA); ok {
		return token, true
	}
	return c.tablet.match(lowerUA)
}

var defaultClassifier = NewClassifier()

// Classify classifies ctx with the default classifier.
func Classify(ctx Context) Class {
	return defaultClassifier.Classify(ctx)
}

// Match reports the first default token found in ua.
func Match(ua string) (string, bool) {
	return defaultClassifier.Match(ua)
}
