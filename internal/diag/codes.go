package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode — запасной код на случай нераспознанной диагностики.
	UnknownCode Code = 0

	// Emission-time name validation (4000-4999). The limits these report
	// against are fixed by the binary metadata and debug formats.
	EmitInfo Code = 4000
	// EmitNameTooLong: a metadata name (possibly synthesized and qualified)
	// does not fit the metadata name slot. Blocks emission.
	EmitNameTooLong Code = 4001
	// EmitPathTooLong: an embedded-resource path does not fit the metadata
	// path slot. Blocks emission.
	EmitPathTooLong Code = 4002
	// EmitLocalNameTooLong: a local/constant name does not fit the debug-info
	// name slot. The name is omitted from debug data; emission proceeds.
	EmitLocalNameTooLong Code = 4003

	// Project manifest (5000-5999).
	PrjInfo              Code = 5000
	PrjManifestSyntax    Code = 5001
	PrjDuplicateResource Code = 5002
	PrjBadResource       Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode:          "unknown diagnostic",
	EmitInfo:             "emission note",
	EmitNameTooLong:      "metadata name too long",
	EmitPathTooLong:      "metadata path too long",
	EmitLocalNameTooLong: "debug local name too long",
	PrjInfo:              "project note",
	PrjManifestSyntax:    "manifest syntax error",
	PrjDuplicateResource: "duplicate resource",
	PrjBadResource:       "invalid resource entry",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("EMIT%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
