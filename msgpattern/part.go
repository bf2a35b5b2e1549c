// Package msgpattern implements a recursive-descent parser for ICU
// MessageFormat pattern strings. A parse produces a flat, linearly-indexed
// sequence of Parts (tokens plus structural brackets) that together form a
// navigable AST of the message, without ever building pointer-linked tree
// nodes.
package msgpattern

// PartType identifies the kind of token or structural marker a Part
// represents.
type PartType int

const (
	MsgStart PartType = iota + 1
	MsgLimit
	SkipSyntax
	InsertChar
	ReplaceNumber
	ArgStart
	ArgLimit
	ArgNumber
	ArgName
	ArgTypeKeyword
	ArgStyle
	ArgSelector
	ArgInt
	ArgDouble
)

func (t PartType) String() string {
	return partTypeToDescription[t]
}

func (t PartType) GoString() string {
	return partTypeToDescription[t]
}

var partTypeToDescription = map[PartType]string{
	MsgStart:       "MsgStart",
	MsgLimit:       "MsgLimit",
	SkipSyntax:     "SkipSyntax",
	InsertChar:     "InsertChar",
	ReplaceNumber:  "ReplaceNumber",
	ArgStart:       "ArgStart",
	ArgLimit:       "ArgLimit",
	ArgNumber:      "ArgNumber",
	ArgName:        "ArgName",
	ArgTypeKeyword: "ArgTypeKeyword",
	ArgStyle:       "ArgStyle",
	ArgSelector:    "ArgSelector",
	ArgInt:         "ArgInt",
	ArgDouble:      "ArgDouble",
}

func init() {
	// Guard against a newly added PartType that forgot a description,
	// the way tokenToDescription is validated for TokenType in the SQL scanner.
	for t := MsgStart; t <= ArgDouble; t++ {
		if partTypeToDescription[t] == "" {
			panic("msgpattern: PartType missing description")
		}
	}
}

// ArgClass is the classification of an argument, carried on ArgStart/ArgLimit
// Parts as their Value.
type ArgClass int

const (
	ArgClassNone ArgClass = iota
	ArgClassSimple
	ArgClassChoice
	ArgClassPlural
	ArgClassSelect
	ArgClassSelectOrdinal
)

func (c ArgClass) String() string {
	return argClassToDescription[c]
}

var argClassToDescription = map[ArgClass]string{
	ArgClassNone:          "None",
	ArgClassSimple:        "Simple",
	ArgClassChoice:        "Choice",
	ArgClassPlural:        "Plural",
	ArgClassSelect:        "Select",
	ArgClassSelectOrdinal: "SelectOrdinal",
}

// MaxValue bounds Part.Value, the part count and the stored-double count.
// Chosen to match the 2^30-1 style cap the source encodes into fixed-width
// fields.
const MaxValue = 1<<30 - 1

// MaxLength bounds the length of any single token span (argument names,
// selectors, numeric literals, style text).
const MaxLength = 0xFFFF

// MaxNestingDepth bounds message nesting (sub-message inside plural/select
// inside sub-message...).
const MaxNestingDepth = 300

// Part is a single token or structural bracket produced by the parser.
// Index and Length are Unicode scalar offsets/lengths into the original
// pattern string, not byte offsets.
type Part struct {
	Type    PartType
	Index   int
	Length  int
	Value   int
	ArgType ArgClass // only meaningful for ArgStart/ArgLimit
}

// Limit returns Index+Length, the exclusive end of the Part's source span.
func (p Part) Limit() int {
	return p.Index + p.Length
}
