// Package library holds the contracts of the rides services. The facade
// client acts as a registry returning one implementation per resource, and
// mocks are generated from these interfaces for callers that want to test
// against the SDK without a network.
package library

type Library interface {
	Products() Products
	Estimates() Estimates
	Requests() Requests
}
