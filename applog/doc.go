// Package applog provides a small leveled logger used for search-engine
// progress reporting (spec.md §1.1 ambient stack), trimmed down from the
// retrieved corpus's structured-logging convention: printf-style messages,
// a WithField chain for structured context, and a level filter.
//
// Unlike the donor implementation, applog carries no global logger and no
// mutex: every Logger value is owned by exactly one single-threaded search
// run (spec.md §5), so there is nothing to protect.
package applog
