package config

import "context"

// MultiLoader fans Load out to several format-specific loaders and merges
// their models. Which files a loader picks up is that loader's own concern;
// the MultiLoader only aggregates and enforces name uniqueness across
// formats.
type MultiLoader struct {
	loaders []Loader
}

// NewMultiLoader creates a MultiLoader over the given loaders. Load runs
// them in the given order, which fixes the spec order of the merged model.
func NewMultiLoader(loaders ...Loader) *MultiLoader {
	return &MultiLoader{loaders: loaders}
}

// Load implements Loader.
func (l *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	merged := &Model{}
	for _, sub := range l.loaders {
		m, err := sub.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(m); err != nil {
			return nil, err
		}
	}
	return merged, nil
}
