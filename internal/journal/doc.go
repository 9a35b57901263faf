// Package journal keeps a SQLite ledger of translation task outcomes so that
// failures and timings of past runs can be inspected after the fact.
package journal
