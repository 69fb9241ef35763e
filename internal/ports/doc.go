// Package ports declares the capability interfaces the domain depends on.
//
// Domain packages import ports only; concrete adapters live under
// internal/infrastructure and are wired together by cmd/tint. A nil port is
// a supported configuration and means the capability is unavailable in the
// current execution context.
package ports
