package handler

import (
	"github.com/google/wire"
)

// ProviderSet is the wire provider set for the handler package
var ProviderSet = wire.NewSet(NewHandler)
