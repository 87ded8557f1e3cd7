// Package xmltv loads channel catalogs from XMLTV documents.
//
// It understands both full listing files and channels-only payloads, the
// historical catalog filename conventions, and hands the analysis engine
// plain records: the engine itself never sees XML or the filesystem.
package xmltv
