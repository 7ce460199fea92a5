package csv

import (
	"github.com/ajitpratap0/nova/pkg/connector/registry"
)

func init() {
	// Register CSV destination factory
	_ = registry.RegisterDestination("csv", NewDestination)
}
