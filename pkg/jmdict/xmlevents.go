// Package jmdict implements the XML source layer: streaming parsers
// for the phrase dictionary (JMdict), the kanji dictionary (kanjidic2)
// and the proper-name dictionary (JMnedict), plus the entry types each
// parser produces.
package jmdict

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/udoprog/jpv-go/pkg/jpverrors"
)

// EventKind discriminates the members of Event, mirroring the
// Open/Close/Text/Eof tokenizer output the builders below are driven
// by. Attribute references are folded onto the owning Open event
// (Event.Attr) rather than streamed as a separate kind: encoding/xml
// already hands StartElement its attribute list as a unit, and no
// builder below needs an attribute before it has the element name.
type EventKind uint8

const (
	EventOpen EventKind = iota
	EventText
	EventClose
	EventEOF
)

// Event is one token off the underlying XML stream.
type Event struct {
	Kind EventKind
	Name string
	Text string
	Attr []xml.Attr
}

// TokenStream wraps encoding/xml.Decoder and folds its token stream
// down to the four event kinds the entry builders care about,
// collapsing character data and CDATA into Text and discarding
// comments, directives and the DOCTYPE internal subset. JMdict's
// DOCTYPE declares hundreds of custom entities (&v5k;, &ichi1; ...);
// entities carries the resolved replacement text for each so the
// decoder does not choke on references it cannot expand itself.
type TokenStream struct {
	dec  *xml.Decoder
	path []string
}

// NewTokenStream constructs a stream over r. entities maps bare entity
// names (without & or ;) to their replacement text.
func NewTokenStream(r io.Reader, entities map[string]string) *TokenStream {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.Entity = entities
	return &TokenStream{dec: dec}
}

// Next returns the next event, or an EventEOF event once the
// underlying stream is exhausted.
func (t *TokenStream) Next() (Event, error) {
	for {
		tok, err := t.dec.Token()
		if err == io.EOF {
			return Event{Kind: EventEOF}, nil
		}
		if err != nil {
			return Event{}, jpverrors.Wrap(jpverrors.Parse, "xml token", err)
		}

		switch v := tok.(type) {
		case xml.StartElement:
			t.path = append(t.path, v.Name.Local)
			return Event{Kind: EventOpen, Name: v.Name.Local, Attr: v.Attr}, nil
		case xml.EndElement:
			if len(t.path) == 0 || t.path[len(t.path)-1] != v.Name.Local {
				return Event{}, jpverrors.New(jpverrors.Parse, fmt.Sprintf("unbalanced close element %q", v.Name.Local))
			}
			t.path = t.path[:len(t.path)-1]
			return Event{Kind: EventClose, Name: v.Name.Local}, nil
		case xml.CharData:
			text := string(v)
			if len(t.path) == 0 {
				continue
			}
			return Event{Kind: EventText, Text: text}, nil
		default:
			// comments, processing instructions, directives: skipped.
			continue
		}
	}
}

// Attr looks up a named attribute, returning "" if absent.
func Attr(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
