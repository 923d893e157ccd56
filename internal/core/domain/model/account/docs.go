// Package account holds the identity-side value objects this core consumes:
// the Role enumeration and the authenticated Principal. Credential handling
// lives entirely in the external identity service; this package only models
// its verified output.
package account
