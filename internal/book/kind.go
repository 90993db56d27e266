package book

// Kind identifies a book variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindDigital
	KindPhysical
	KindAudio
)

var kindNames = map[Kind]string{
	KindDigital:  "digital",
	KindPhysical: "physical",
	KindAudio:    "audio",
}

// Kinds lists the known variants in report order.
var Kinds = []Kind{KindDigital, KindPhysical, KindAudio}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps "digital", "physical" or "audio" to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindUnknown, false
}
