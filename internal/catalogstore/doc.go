// Package catalogstore archives fetched catalog payloads in SQLite.
//
// Every valid download from the XMLTVListings API is recorded with its run
// identifier and fetch timestamp; the newest channels payload per lineup
// doubles as a local cache, since the API caps downloads per day. The
// database is an audit trail of raw payloads only; analysis results are
// recomputed from scratch each run and never stored here.
package catalogstore
