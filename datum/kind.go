package datum

// Kind identifies the variant a datum holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindInt32
	KindInt64
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindFixed
	KindEnum
	KindArray
	KindMap
	KindRecord
	KindUnion
	KindLink
)

var kindNames = [...]string{
	KindNull:    "null",
	KindBoolean: "boolean",
	KindInt32:   "int",
	KindInt64:   "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindString:  "string",
	KindBytes:   "bytes",
	KindFixed:   "fixed",
	KindEnum:    "enum",
	KindArray:   "array",
	KindMap:     "map",
	KindRecord:  "record",
	KindUnion:   "union",
	KindLink:    "link",
}

// String returns the Avro type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsComposite reports whether values of this kind own child datums.
func (k Kind) IsComposite() bool {
	switch k {
	case KindArray, KindMap, KindRecord, KindUnion:
		return true
	}
	return false
}

// Class separates value instances from schema instances, which share the
// kind tag space.
type Class uint8

const (
	ClassDatum Class = iota
	ClassSchema
)

func (c Class) String() string {
	if c == ClassSchema {
		return "schema"
	}
	return "datum"
}
