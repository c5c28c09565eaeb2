package cache

import "errors"

// ErrNoLoader is returned by GetOrLoad when the cache has no Loader
// configured to fall back to.
var ErrNoLoader = errors.New("cache: no loader configured")
