package types

// LoadStatus is the lifecycle of the session's rate table.
type LoadStatus int

const (
	LoadIdle LoadStatus = iota
	LoadPending
	LoadLoaded
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadPending:
		return "pending"
	case LoadLoaded:
		return "loaded"
	case LoadFailed:
		return "failed"
	}
	return "unknown"
}

// LoadResult is what CurrencyStore.EnsureLoaded reports.
type LoadResult struct {
	Status LoadStatus
	Rates  RateTable
}
