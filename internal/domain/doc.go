// Package domain contains the value objects and closed vocabularies shared by
// the eholdings gateway: tenant identity, catalog record ids, identifier and
// contributor vocabularies, content and publication types, and the validation
// errors raised when inbound data falls outside them. Nothing in this package
// performs I/O.
package domain
