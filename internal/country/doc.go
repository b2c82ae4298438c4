// Package country holds the country directory model behind the dialing-code picker.
//
// Allowed here:
// - building display entries from territory codes (name, prefix, flag)
// - the common/all/filtered views and the search predicate over them
// - section/row addressing and the browsing/filtering state machine
//
// Not allowed here:
// - rendering, key handling, or any terminal concerns
// - locale data sources (they are injected through Lookup)
package country
