package data

import (
	"context"

	"github.com/google/wire"

	"github.com/aigram-labs/aigram/config"
	"github.com/aigram-labs/aigram/logging/logger"
)

// ProviderSet is the wire provider set for the data package
var ProviderSet = wire.NewSet(ProvideData)

// ProvideData initializes the data layer and returns its cleanup function.
// A missing or unreachable store is not fatal: the provider yields a nil
// data layer and data-touching endpoints report the store as unconfigured.
func ProvideData(cfg *config.Data, log *logger.Logger) (*Data, func(), error) {
	d, err := New(cfg, log)
	if err != nil {
		log.Warn(context.Background(), "running without database", "error", err)
		return nil, func() {}, nil
	}
	cleanup := func() {
		if err := d.Close(); err != nil {
			log.Error(context.Background(), "failed to close data layer", "error", err)
		}
	}
	return d, cleanup, nil
}
