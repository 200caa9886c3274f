package emit

// Hard length limits imposed by the binary formats, in UTF-8 bytes — the
// unit the formats actually store. Not user-configurable.
const (
	// MetadataNameLengthLimit bounds every name stored in a metadata name
	// slot: types (namespace-qualified), members, params, resource names.
	MetadataNameLengthLimit = 1024 - 1

	// MetadataPathLengthLimit bounds file paths stored in metadata, such as
	// embedded-resource paths.
	MetadataPathLengthLimit = 260 - 1

	// PdbLocalNameLengthLimit bounds local/constant names stored in debug
	// symbol data. Exceeding it degrades debugging only; emission proceeds
	// with the name omitted.
	PdbLocalNameLengthLimit = 2046
)

// LimitKind identifies which format limit a violation is measured against.
type LimitKind uint8

const (
	LimitName LimitKind = iota
	LimitPath
	LimitPdbLocal
)

func (k LimitKind) String() string {
	switch k {
	case LimitName:
		return "metadata-name"
	case LimitPath:
		return "metadata-path"
	case LimitPdbLocal:
		return "pdb-local-name"
	}
	return "unknown"
}

// Limit returns the byte limit for the kind.
func (k LimitKind) Limit() int {
	switch k {
	case LimitName:
		return MetadataNameLengthLimit
	case LimitPath:
		return MetadataPathLengthLimit
	case LimitPdbLocal:
		return PdbLocalNameLengthLimit
	}
	return MetadataNameLengthLimit
}
