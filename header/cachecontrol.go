package header

import (
	"strconv"
	"strings"
	"time"
)

// CacheControl builds a Cache-Control header. Directives render in the order
// they were added.
type CacheControl struct {
	directives []string
}

// NewCacheControl returns a Cache-Control header without directives.
func NewCacheControl() CacheControl {
	return CacheControl{}
}

func (c CacheControl) with(directive string) CacheControl {
	directives := make([]string, len(c.directives), len(c.directives)+1)
	copy(directives, c.directives)
	c.directives = append(directives, directive)
	return c
}

// WithPublic allows shared caches to store the response.
func (c CacheControl) WithPublic() CacheControl { return c.with("public") }

// WithPrivate restricts storage to the client's private cache.
func (c CacheControl) WithPrivate() CacheControl { return c.with("private") }

// WithNoCache requires revalidation before every reuse.
func (c CacheControl) WithNoCache() CacheControl { return c.with("no-cache") }

// WithNoStore forbids caching the response at all.
func (c CacheControl) WithNoStore() CacheControl { return c.with("no-store") }

// WithNoTransform forbids intermediaries from altering the body.
func (c CacheControl) WithNoTransform() CacheControl { return c.with("no-transform") }

// WithMustRevalidate forbids serving the response once stale.
func (c CacheControl) WithMustRevalidate() CacheControl { return c.with("must-revalidate") }

// WithImmutable declares the body will not change while fresh.
func (c CacheControl) WithImmutable() CacheControl { return c.with("immutable") }

// WithMaxAge sets max-age, truncated to whole seconds.
func (c CacheControl) WithMaxAge(d time.Duration) CacheControl {
	return c.with("max-age=" + seconds(d))
}

// WithSharedMaxAge sets s-maxage, truncated to whole seconds.
func (c CacheControl) WithSharedMaxAge(d time.Duration) CacheControl {
	return c.with("s-maxage=" + seconds(d))
}

// Name implements Header.
func (c CacheControl) Name() string {
	return "Cache-Control"
}

// Values implements Header. A header without directives encodes to nothing.
func (c CacheControl) Values() []string {
	if len(c.directives) == 0 {
		return nil
	}
	return []string{strings.Join(c.directives, ", ")}
}

func seconds(d time.Duration) string {
	return strconv.FormatInt(int64(d/time.Second), 10)
}
