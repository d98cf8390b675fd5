package scores

// Source tags which tier served a request.
type Source int

const (
	SourceRemote Source = iota // The scores service answered
	SourceLocal                // The local fallback store answered
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// SaveResult is the outcome of Adapter.Save.
//
// Success with SourceRemote means the service stored Record. Success with
// SourceLocal means the service was unreachable and Record went to the
// fallback store; Evicted is set when Record ranked below the store's
// capacity and was not retained. Success is false only when the fallback
// store itself failed, and Err says why.
type SaveResult struct {
	Success bool
	Record  RunResult
	Source  Source
	Evicted bool
	Err     error
}

// IsLocal reports whether the fallback store served the save.
func (r SaveResult) IsLocal() bool {
	return r.Source == SourceLocal
}

// LoadResult is the outcome of Adapter.Load. Scores are sorted by score,
// highest first.
type LoadResult struct {
	Success bool
	Scores  []RunResult
	Source  Source
}

// IsLocal reports whether the fallback store served the load.
func (r LoadResult) IsLocal() bool {
	return r.Source == SourceLocal
}
