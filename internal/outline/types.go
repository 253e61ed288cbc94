package outline

import "encoding/json"

// CharSpan is an absolute byte-offset range [start, end] into the source
// text. Values are signed so the reserved "unset" sentinel [0, -1] can be
// represented.
type CharSpan [2]int

// SentinelSpan returns the reserved "unset" span used for footer regions
// that are not tracked yet.
func SentinelSpan() CharSpan { return CharSpan{0, -1} }

// Point is a [line, column] pair for human display. Line is 1-based;
// column is the 0-based byte offset within its line.
type Point [2]int

// LocationSpan is the start/end display range of a node.
type LocationSpan struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Node is one vertex of the normalized outline tree: either a *Container
// or a *Terminal. The serialized form carries no explicit tag; the two
// shapes are told apart by the presence of a children field. That keeps
// the wire format compatible but makes it fragile: a Terminal must never
// grow an optional children field.
type Node interface {
	isNode()
}

// Container is an outline node that owns child nodes, e.g. a function or
// struct declaration. HeaderSpan covers the node's own source range;
// FooterSpan is reserved for future multi-region nodes and always holds
// the sentinel value.
type Container struct {
	Type         string       `json:"type"`
	Name         string       `json:"name"`
	LocationSpan LocationSpan `json:"locationSpan"`
	HeaderSpan   CharSpan     `json:"headerSpan"`
	FooterSpan   CharSpan     `json:"footerSpan"`
	Children     Nodes        `json:"children"`
}

// Terminal is a childless outline node representing an atomic syntactic
// unit, e.g. an identifier or literal.
type Terminal struct {
	Type         string       `json:"type"`
	Name         string       `json:"name"`
	LocationSpan LocationSpan `json:"locationSpan"`
	Span         CharSpan     `json:"span"`
}

func (*Container) isNode() {}
func (*Terminal) isNode()  {}

// ParsingError is the optional whole-file parse failure detail. The
// current pipeline reports file-level failures to the driver instead of
// embedding them, so this stays nil in practice.
type ParsingError struct {
	Location LocationSpan `json:"location"`
	Message  string       `json:"message"`
}

// File is the root record for one converted source file. Its children are
// the top-level outline nodes in source order; the parse root itself is
// never emitted.
type File struct {
	Type                  string        `json:"type"`
	Name                  string        `json:"name"`
	LocationSpan          LocationSpan  `json:"locationSpan"`
	FooterSpan            CharSpan      `json:"footerSpan"`
	ParsingErrorsDetected bool          `json:"parsingErrorsDetected"`
	Children              Nodes         `json:"children"`
	ParsingError          *ParsingError `json:"parsingError"`
}

// Nodes is an ordered child sequence. It carries the custom JSON handling
// for the untagged Container/Terminal union.
type Nodes []Node

// MarshalJSON always emits an array, never null, so an empty child list
// round-trips as [].
func (ns Nodes) MarshalJSON() ([]byte, error) {
	if ns == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Node(ns))
}

// UnmarshalJSON decodes each element as a Container or Terminal.
func (ns *Nodes) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Nodes, 0, len(raw))
	for _, item := range raw {
		node, err := decodeNode(item)
		if err != nil {
			return err
		}
		out = append(out, node)
	}
	*ns = out
	return nil
}

// decodeNode discriminates the two node shapes structurally: only
// containers carry a children field.
func decodeNode(data []byte) (Node, error) {
	var probe struct {
		Children json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	if probe.Children != nil {
		var c Container
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return &c, nil
	}

	var t Terminal
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
