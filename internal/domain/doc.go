// Package domain defines the core entities of the poem generator: the word a
// user submits and the poem generated for it, together with the validation
// rules that apply to them. Nothing in this package is persisted; both values
// live only for the duration of one request.
package domain
