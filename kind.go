package charconv

//go:generate stringer -type=Kind

// Kind names a member of the closed set of types the dispatch functions handle.
type Kind uint8

const (
	KUnknown Kind = 0
	KBool    Kind = 1
	KChar    Kind = 2
	KInt8    Kind = 3
	KInt16   Kind = 4
	KInt32   Kind = 5
	KInt64   Kind = 6
	KInt     Kind = 7
	KUint8   Kind = 8
	KUint16  Kind = 9
	KUint32  Kind = 10
	KUint64  Kind = 11
	KUint    Kind = 12
	KFloat32 Kind = 13
	KFloat64 Kind = 14
	KPointer Kind = 15
	KString  Kind = 16
	KBytes   Kind = 17
	KFixed   Kind = 18
	KOwned   Kind = 19
)

// IsNumeric determines if a Kind is decoded with the integer or real grammar.
func IsNumeric(k Kind) bool {
	return k >= KInt8 && k <= KPointer
}

// IsSpan determines if a Kind is a run of bytes copied or aliased verbatim.
func IsSpan(k Kind) bool {
	switch k {
	case KString, KBytes, KFixed, KOwned:
		return true
	}
	return false
}

// KindOf returns the Kind of T.
func KindOf[T Value]() Kind {
	var t T
	switch any(t).(type) {
	case bool:
		return KBool
	case Char:
		return KChar
	case int8:
		return KInt8
	case int16:
		return KInt16
	case int32:
		return KInt32
	case int64:
		return KInt64
	case int:
		return KInt
	case uint8:
		return KUint8
	case uint16:
		return KUint16
	case uint32:
		return KUint32
	case uint64:
		return KUint64
	case uint:
		return KUint
	case float32:
		return KFloat32
	case float64:
		return KFloat64
	case uintptr:
		return KPointer
	case string:
		return KString
	case []byte:
		return KBytes
	case Fixed:
		return KFixed
	case Owned:
		return KOwned
	}
	return KUnknown
}
