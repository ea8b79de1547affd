package route

import "sync"

// Router runs filter and search against a fixed Dataset.
type Router struct {
	dataset *Dataset

	memoEnabled bool
	mu          sync.Mutex
	memo        *memoEntry
}

type memoKey struct {
	start, end Location
	held       CapabilitySet
}

type memoEntry struct {
	key    memoKey
	result Result
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithMemo keeps the most recent result so a repeated request is answered
// without searching again.
func WithMemo() RouterOption {
	return func(r *Router) {
		r.memoEnabled = true
	}
}

func NewRouter(ds *Dataset, opts ...RouterOption) *Router {
	r := &Router{dataset: ds}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dataset returns the dataset the router searches.
func (r *Router) Dataset() *Dataset {
	return r.dataset
}

// Route finds a path from start to end for someone holding held.
func (r *Router) Route(start, end Location, held CapabilitySet) Result {
	if !r.memoEnabled {
		return r.dataset.Search(start, end, held)
	}

	key := memoKey{start: start, end: end, held: held}

	r.mu.Lock()
	if r.memo != nil && r.memo.key == key {
		res := r.memo.result
		r.mu.Unlock()
		return res.clone()
	}
	r.mu.Unlock()

	res := r.dataset.Search(start, end, held)

	r.mu.Lock()
	r.memo = &memoEntry{key: key, result: res}
	r.mu.Unlock()

	return res.clone()
}

func (r Result) clone() Result {
	if r.Path != nil {
		p := make(Path, len(r.Path))
		copy(p, r.Path)
		r.Path = p
	}
	return r
}
