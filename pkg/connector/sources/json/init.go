package json

import (
	"github.com/ajitpratap0/nova/pkg/connector/registry"
)

func init() {
	// Register JSON source factory
	_ = registry.RegisterSource("json", NewSource)
}
