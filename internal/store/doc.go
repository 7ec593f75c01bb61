// Package store holds the resolved MESC configuration.
//
// A Store is built once per resolution pass and never changes afterwards,
// so any number of goroutines may read it without locking. To pick up new
// sources, resolve again and replace the Store.
package store
