package platform

import (
	"github.com/aretw0/jotter/pkg/core"
)

// New opens the configured preference store and wraps it in a note store.
// The collection is not loaded; call LoadAll.
//
//	store, err := jotter.New("./notes", jotter.WithAdapter("sqlite"))
func New(uri string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	prefs, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	key, _ := o.config["key"].(string)
	return core.NewStore(prefs, core.WithLogger(o.logger), core.WithKey(key)), nil
}
