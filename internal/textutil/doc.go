// Package textutil provides small text helpers shared by the extraction and
// reporting code: path basename handling for sample/preset references
// (which may use either slash style), bounded truncation for fallback
// identities, and a generic ternary.
package textutil
