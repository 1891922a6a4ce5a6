// Package session persists editing sessions in SQLite.
//
// A session stores named documents together with the limits snapshot they
// were last checked against, so restoring a session reproduces the exact
// flag computation the user saw. The database lives under the configured
// session directory and is guarded by a file lock so two subfix processes
// cannot write it concurrently.
package session
