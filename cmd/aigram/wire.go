//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/aigram-labs/aigram/config"
	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/handler"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/service"
)

// initApp wires the application together. The returned cleanup closes the
// data layer and flushes the logger; call it on shutdown.
func initApp() (*App, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.ProviderSet,
		data.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,
		NewApp,
	))
}
