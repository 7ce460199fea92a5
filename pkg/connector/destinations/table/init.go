package table

import (
	"github.com/ajitpratap0/nova/pkg/connector/registry"
)

func init() {
	// Register table destination factory
	_ = registry.RegisterDestination("table", NewDestination)
}
