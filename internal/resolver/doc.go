// Package resolver turns raw MESC sources into an immutable store.
//
// Resolution runs in three stages:
//  1. the mode is selected from MESC_MODE, MESC_PATH and MESC_ENV;
//  2. the base configuration is read from a file or an inline string and
//     checked by the schema validator;
//  3. the override variables are layered on top in a fixed order.
//
// Any failure aborts the whole pass. A configuration is never partially
// overridden.
package resolver
