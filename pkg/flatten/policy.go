package flatten

import (
	"github.com/ajitpratap0/nova/pkg/config"
	"github.com/ajitpratap0/nova/pkg/errors"
)

// Policy selects the array-handling strategy applied during flattening.
// It is chosen once per conversion and applied uniformly to all records.
type Policy int

const (
	// PolicyDotJoin joins all-scalar arrays with ", " and serializes
	// arrays containing nested values to JSON text.
	PolicyDotJoin Policy = iota
	// PolicyIndexedColumns emits one column per array element, suffixed
	// with the element index (key_0, key_1, ...).
	PolicyIndexedColumns
	// PolicySerialize serializes every array to JSON text regardless of
	// element types.
	PolicySerialize
)

// String returns the config-file name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyDotJoin:
		return config.PolicyDot
	case PolicyIndexedColumns:
		return config.PolicyColumns
	case PolicySerialize:
		return config.PolicySerialize
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name as used in config files and CLI flags.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case config.PolicyDot:
		return PolicyDotJoin, nil
	case config.PolicyColumns:
		return PolicyIndexedColumns, nil
	case config.PolicySerialize:
		return PolicySerialize, nil
	default:
		return PolicyDotJoin, errors.New(errors.ErrorTypeConfig, "unknown flatten policy").WithDetail("policy", name)
	}
}

// PolicyNames returns the accepted policy names in display order.
func PolicyNames() []string {
	return []string{config.PolicyDot, config.PolicyColumns, config.PolicySerialize}
}
