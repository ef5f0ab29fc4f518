// Package service provides the registry that routes tool calls to providers.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Every Execute call:
//   - validates the "service.tool" ID and parameter nesting
//   - gets a ULID call ID and a child logger carrying it
//   - is timed with a Stopwatch and recorded in Prometheus collectors
//   - converts a provider panic into a failed result with code "computation"
//
// Example Usage:
//
//	registry := service.NewRegistry(logger, metrics)
//	registry.Register(mathProvider)
//	tools := registry.Discover("histogram bins", 5)
//	result, err := registry.Execute(ctx, "math.histogram", params, nil)
package service
