// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Claim is the predicate function for claim builders.
type Claim func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// VerificationResult is the predicate function for verificationresult builders.
type VerificationResult func(*sql.Selector)
