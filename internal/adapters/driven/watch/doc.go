// Package watch notices external changes to the CV collection.
//
// Watcher observes the data directory with fsnotify and emits a
// coalesced signal whenever the SQLite database files change, so a
// hosting view can reload the collection wholesale.
package watch
