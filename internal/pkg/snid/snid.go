// Package snid generates opaque snippet identifiers.
package snid

import "github.com/dchest/uniuri"

// Length is the number of characters in a generated snippet id.
const Length = 10

// New returns a fresh URL-safe alphanumeric snippet id. Uniqueness is not
// guaranteed here; the store retries insertion on primary key conflict.
func New() string {
	return uniuri.NewLen(Length)
}
