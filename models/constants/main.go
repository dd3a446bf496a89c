// Package constants defines the base level kinds and enums used
// throughout Leopa and its associated services.
package constants

type Inheritance string

type UnknownLocusPolicy string
