// Package domain contains the contact book's value types: contact names,
// phone numbers and the records that tie them together. Values are validated
// when they are constructed, so a Name or Phone obtained from this package is
// always well formed. The types carry no storage or transport concerns.
package domain
