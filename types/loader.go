package types

import "context"

// Loader is the contract between the cache and a backing source of data.
type Loader interface {

	/*
		Load is called when the cache misses. The key was not found in
		memory (or was expired), so the cache asks the Loader to fetch it:

		1. Cache checks memory → nothing usable
		2. Cache calls Load(key)
		3. Loader fetches from DB/API
		4. Cache stores the result in memory
		5. Cache returns the value

		Returning a nil value with a nil error means the source has
		nothing for this key; the cache will not store anything.
	*/
	Load(ctx context.Context, key string) (any, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, key string) (any, error)

func (f LoaderFunc) Load(ctx context.Context, key string) (any, error) {
	return f(ctx, key)
}
