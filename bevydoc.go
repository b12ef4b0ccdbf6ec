// Package bevydoc provides a local, CLI-based lookup tool for Bevy engine
// API documentation hosted on docs.rs. Given a keyword it builds the docs.rs
// search URL, parses the results page, picks the best-matching item, and
// extracts the item's signature and example code. Lookups are cached locally
// so repeated queries don't hit the network.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package bevydoc
