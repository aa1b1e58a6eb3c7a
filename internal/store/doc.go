// Package store defines the persistence interfaces used by the service
// layer. Implementations live under internal/platform; the interfaces here
// keep the domain and service packages free of storage concerns.
package store
