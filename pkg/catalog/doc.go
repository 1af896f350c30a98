// Package catalog holds the normalized catalog rows and the codelist index.
//
// A Store is built once from already-parsed tabular input and is read-only
// afterwards, so it can be shared between goroutines without locking. Data
// quality problems in the input (duplicate keys, rows without a usable kind,
// attributes without an attribute code) never fail the build; they are kept
// or skipped as documented on NewStore and reported through Store.Issues.
package catalog
