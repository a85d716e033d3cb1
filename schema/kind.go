package schema

// Kind identifies the variant of a schema node.
type Kind uint8

const (
	KindField Kind = iota
	KindStruct
	KindUnion
	KindEnum
	KindSequence
	KindVector
	KindPointer
	KindVariableString
	KindTerminatedString
)

var kindNames = [...]string{
	KindField:            "Field",
	KindStruct:           "Struct",
	KindUnion:            "Union",
	KindEnum:             "Enum",
	KindSequence:         "Sequence",
	KindVector:           "Vector",
	KindPointer:          "Pointer",
	KindVariableString:   "VariableString",
	KindTerminatedString: "TerminatedString",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsComposite reports whether nodes of this kind have children.
func (k Kind) IsComposite() bool {
	switch k {
	case KindStruct, KindUnion, KindSequence, KindVector, KindPointer:
		return true
	default:
		return false
	}
}
