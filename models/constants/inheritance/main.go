package inheritance

import (
	"leopa/api/models/constants"
	"strings"
)

const (
	Unknown constants.Inheritance = ""

	Recessive  constants.Inheritance = "recessive"
	Dominant   constants.Inheritance = "dominant"
	Codominant constants.Inheritance = "codominant"
)

func CastToInheritance(text string) constants.Inheritance {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "recessive":
		return Recessive
	case "dominant":
		return Dominant
	case "codominant", "co-dominant", "incomplete_dominant":
		return Codominant
	default:
		return Unknown
	}
}

func IsKnown(text string) bool {
	// attempt to cast to an inheritance type and
	// return if unknown
	return CastToInheritance(text) != Unknown
}
