// Package domain contains the core taxonomy entities used by the resolver:
// raw term records as the repository produces them, and the resolved term
// objects built from those records. These types are free of infrastructure
// concerns so they can be shared across packages.
package domain
