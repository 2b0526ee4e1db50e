package jmdict

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/inflect"
	"github.com/udoprog/jpv-go/pkg/jpverrors"
)

// NameReading is one (reading-text, optional priority) pair on a name
// entry.
type NameReading struct {
	Text     string
	Priority string
}

// Translation is one (translation-text, optional language) pair on a
// name entry.
type Translation struct {
	Text string
	Lang string
}

// NameEntry is one JMnedict proper-name entry (spec.md §3, "Name
// entry"), grounded on jmnedict/mod.rs's Entry and jmnedict/parser.rs's
// EntryBuilder.
type NameEntry struct {
	Sequence     uint64
	Kanji        []string
	Readings     []NameReading
	NameTypes    []entity.NameType
	Translations []Translation
}

// Weight computes this name entry's relevance score against input,
// mirroring Character.Weight: name entries carry no sense, priority, or
// inflection-source data to drive Entry.Weight's full §4.5.1 formula,
// so an exact literal or reading match boosts the same query multiplier
// to 3.0, times the same length multiplier.
func (n NameEntry) Weight(input string) inflect.Weight {
	query := 1.0
	length := (float64(minInt(utf8.RuneCountInString(input), 10)) / 10.0) * 1.2

	for _, k := range n.Kanji {
		if k == input {
			query = maxFloat(query, 3.0)
		}
	}
	for _, r := range n.Readings {
		if r.Text == input {
			query = maxFloat(query, 3.0)
		}
	}

	return inflect.Weight(query * length)
}

// NameParser streams NameEntry values out of a JMnedict XML document.
type NameParser struct {
	ts   *TokenStream
	saw  bool
	done bool
}

// NewNameParser constructs a NameParser reading from r.
func NewNameParser(r io.Reader) *NameParser {
	return &NameParser{ts: NewTokenStream(r, NameEntityMap())}
}

// Next returns the next NameEntry, or (nil, nil) once the document is
// exhausted.
func (p *NameParser) Next() (*NameEntry, error) {
	if p.done {
		return nil, nil
	}

	if !p.saw {
		for {
			ev, err := p.ts.Next()
			if err != nil {
				return nil, err
			}
			if ev.Kind == EventEOF {
				return nil, jpverrors.New(jpverrors.Parse, "unexpected end of document")
			}
			if ev.Kind != EventOpen {
				continue
			}
			if ev.Name != "JMnedict" {
				return nil, jpverrors.New(jpverrors.Parse, "expected JMnedict root element, got "+ev.Name)
			}
			break
		}
		p.saw = true
	}

	ev, err := p.ts.Next()
	if err != nil {
		return nil, err
	}
	switch ev.Kind {
	case EventClose, EventEOF:
		p.done = true
		return nil, nil
	case EventOpen:
		if ev.Name != "entry" {
			return nil, jpverrors.New(jpverrors.Parse, "expected entry element, got "+ev.Name)
		}
		return p.parseEntry()
	default:
		return nil, jpverrors.New(jpverrors.Parse, "unexpected token at document root")
	}
}

func (p *NameParser) parseEntry() (*NameEntry, error) {
	var e NameEntry
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case EventClose:
			return &e, nil
		case EventEOF:
			return nil, jpverrors.New(jpverrors.Parse, "unexpected end of document in <entry>")
		case EventOpen:
			switch ev.Name {
			case "ent_seq":
				text, err := p.textUntilClose("ent_seq")
				if err != nil {
					return nil, err
				}
				n, err := strconv.ParseUint(text, 10, 64)
				if err != nil {
					return nil, jpverrors.Wrap(jpverrors.Parse, "invalid ent_seq", err)
				}
				e.Sequence = n
			case "k_ele":
				text, err := p.parseKanji()
				if err != nil {
					return nil, err
				}
				e.Kanji = append(e.Kanji, text)
			case "r_ele":
				r, err := p.parseReading()
				if err != nil {
					return nil, err
				}
				e.Readings = append(e.Readings, r)
			case "trans":
				if err := p.parseTrans(&e); err != nil {
					return nil, err
				}
			default:
				if err := p.skipElement(); err != nil {
					return nil, err
				}
			}
		}
	}
}

func (p *NameParser) parseKanji() (string, error) {
	var text string
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return "", err
		}
		switch ev.Kind {
		case EventClose:
			return text, nil
		case EventEOF:
			return "", jpverrors.New(jpverrors.Parse, "unexpected end of document in <k_ele>")
		case EventOpen:
			if ev.Name != "keb" {
				if err := p.skipElement(); err != nil {
					return "", err
				}
				continue
			}
			t, err := p.textUntilClose("keb")
			if err != nil {
				return "", err
			}
			text = t
		}
	}
}

func (p *NameParser) parseReading() (NameReading, error) {
	var r NameReading
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return r, err
		}
		switch ev.Kind {
		case EventClose:
			return r, nil
		case EventEOF:
			return r, jpverrors.New(jpverrors.Parse, "unexpected end of document in <r_ele>")
		case EventOpen:
			switch ev.Name {
			case "reb":
				text, err := p.textUntilClose("reb")
				if err != nil {
					return r, err
				}
				r.Text = text
			case "re_pri":
				text, err := p.textUntilClose("re_pri")
				if err != nil {
					return r, err
				}
				r.Priority = text
			default:
				if err := p.skipElement(); err != nil {
					return r, err
				}
			}
		}
	}
}

func (p *NameParser) parseTrans(e *NameEntry) error {
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case EventClose:
			return nil
		case EventEOF:
			return jpverrors.New(jpverrors.Parse, "unexpected end of document in <trans>")
		case EventOpen:
			switch ev.Name {
			case "name_type":
				text, err := p.textUntilClose("name_type")
				if err != nil {
					return err
				}
				nt, ok := entity.ParseNameTypeKeyword(text)
				if !ok {
					return jpverrors.New(jpverrors.Parse, "unsupported name_type "+text)
				}
				e.NameTypes = append(e.NameTypes, nt)
			case "trans_det":
				lang := Attr(ev.Attr, "lang")
				if lang == "" {
					lang = "eng"
				}
				text, err := p.textUntilClose("trans_det")
				if err != nil {
					return err
				}
				e.Translations = append(e.Translations, Translation{Text: text, Lang: lang})
			default:
				if err := p.skipElement(); err != nil {
					return err
				}
			}
		}
	}
}

func (p *NameParser) textUntilClose(name string) (string, error) {
	var text string
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return "", err
		}
		switch ev.Kind {
		case EventText:
			text += ev.Text
		case EventClose:
			return text, nil
		case EventEOF:
			return "", jpverrors.New(jpverrors.Parse, "unexpected end of document in <"+name+">")
		}
	}
}

func (p *NameParser) skipElement() error {
	depth := 1
	for depth > 0 {
		ev, err := p.ts.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case EventOpen:
			depth++
		case EventClose:
			depth--
		case EventEOF:
			return jpverrors.New(jpverrors.Parse, "unexpected end of document while skipping element")
		}
	}
	return nil
}
