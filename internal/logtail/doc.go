// Package logtail reads the tail of the pokedex session log for the in-app
// log view.
//
// Read uses a ring buffer, so it makes a single pass over the file and keeps
// only maxLines in memory. ReadEntries parses each line as a zerolog JSON
// record (time, level, component, message, error plus any extra fields);
// lines that are not JSON objects come back as plain messages.
//
// A missing log file is not an error: it simply has no lines yet.
package logtail
