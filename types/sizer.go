package types

/*
SizeCalculator computes the logical size of one entry.

The cache calls it with (value, key) when an entry is added and again
when that entry is removed; the sum of all adds minus all removes is
the cache's aggregate size.

The result must be non-negative. A negative result is a configuration
bug, not a runtime condition, and the cache treats it as fatal: the
Set or Delete that invoked the calculator panics.
*/
type SizeCalculator func(value any, key string) int64

// UnitSize is the default SizeCalculator: every entry costs exactly 1,
// which makes the aggregate size equal to the resident entry count.
func UnitSize(value any, key string) int64 { return 1 }
