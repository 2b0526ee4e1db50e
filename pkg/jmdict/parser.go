package jmdict

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/jpverrors"
)

// Parser streams Entry values out of a JMdict XML document one
// <entry> at a time, so the builder (pkg/index) never holds the whole
// document in memory. It is driven by the same four-event shape as
// kanjidic2/jmnedict's parsers below: Open/Text/Close/EOF off a
// TokenStream, dispatched by recursive descent over the known JMdict
// element nesting rather than a hand-rolled stack machine, since
// encoding/xml already gives us a properly nested token stream.
type Parser struct {
	ts    *TokenStream
	saw   bool // true once the <JMdict> root element has been opened
	done  bool
}

// NewParser constructs a Parser reading from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{ts: NewTokenStream(r, DictionaryEntityMap())}
}

// Next returns the next Entry, or (nil, nil) once the document is
// exhausted.
func (p *Parser) Next() (*Entry, error) {
	if p.done {
		return nil, nil
	}

	if !p.saw {
		ev, err := p.expectOpen()
		if err != nil {
			return nil, err
		}
		if ev.Name != "JMdict" {
			return nil, jpverrors.New(jpverrors.Parse, "expected JMdict root element, got "+ev.Name)
		}
		p.saw = true
	}

	ev, err := p.ts.Next()
	for err == nil && ev.Kind == EventText {
		// Character data between entries (whitespace) is skipped.
		ev, err = p.ts.Next()
	}
	if err != nil {
		return nil, err
	}
	switch ev.Kind {
	case EventClose:
		p.done = true
		return nil, nil
	case EventOpen:
		if ev.Name != "entry" {
			return nil, jpverrors.New(jpverrors.Parse, "expected entry element, got "+ev.Name)
		}
		return p.parseEntry()
	case EventEOF:
		p.done = true
		return nil, nil
	default:
		return nil, jpverrors.New(jpverrors.Parse, "unexpected token at document root")
	}
}

func (p *Parser) expectOpen() (Event, error) {
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return Event{}, err
		}
		if ev.Kind == EventOpen {
			return ev, nil
		}
		if ev.Kind == EventEOF {
			return Event{}, jpverrors.New(jpverrors.Parse, "unexpected end of document")
		}
	}
}

// textUntilClose collects character data until the current element's
// matching Close event, which it also consumes.
func (p *Parser) textUntilClose(name string) (string, error) {
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

func (p *Parser) parseEntry() (*Entry, error) {
	var e Entry

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
				k, err := p.parseKanjiElement()
				if err != nil {
					return nil, err
				}
				e.KanjiElements = append(e.KanjiElements, k)
			case "r_ele":
				r, err := p.parseReadingElement()
				if err != nil {
					return nil, err
				}
				e.ReadingElements = append(e.ReadingElements, r)
			case "sense":
				s, err := p.parseSense()
				if err != nil {
					return nil, err
				}
				e.Senses = append(e.Senses, s)
			default:
				if err := p.skipElement(); err != nil {
					return nil, err
				}
			}
		}
	}
}

func (p *Parser) parseKanjiElement() (KanjiElement, error) {
	var k KanjiElement
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return k, err
		}
		switch ev.Kind {
		case EventClose:
			return k, nil
		case EventOpen:
			switch ev.Name {
			case "keb":
				text, err := p.textUntilClose("keb")
				if err != nil {
					return k, err
				}
				k.Text = text
			case "ke_pri":
				text, err := p.textUntilClose("ke_pri")
				if err != nil {
					return k, err
				}
				pr, err := ParsePriority(text)
				if err != nil {
					return k, jpverrors.Wrap(jpverrors.Parse, "ke_pri", err)
				}
				k.Priority = append(k.Priority, pr)
			case "ke_inf":
				text, err := p.textUntilClose("ke_inf")
				if err != nil {
					return k, err
				}
				info, ok := entity.ParseKanjiInfoKeyword(text)
				if !ok {
					return k, jpverrors.New(jpverrors.Parse, "unsupported ke_inf "+text)
				}
				k.Info = append(k.Info, info)
			default:
				if err := p.skipElement(); err != nil {
					return k, err
				}
			}
		}
	}
}

func (p *Parser) parseReadingElement() (ReadingElement, error) {
	var r ReadingElement
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return r, err
		}
		switch ev.Kind {
		case EventClose:
			return r, nil
		case EventOpen:
			switch ev.Name {
			case "reb":
				text, err := p.textUntilClose("reb")
				if err != nil {
					return r, err
				}
				r.Text = text
			case "re_nokanji":
				r.NoKanji = true
				if _, err := p.textUntilClose("re_nokanji"); err != nil {
					return r, err
				}
			case "re_restr":
				text, err := p.textUntilClose("re_restr")
				if err != nil {
					return r, err
				}
				r.RestrictedToKanji = append(r.RestrictedToKanji, text)
			case "re_pri":
				text, err := p.textUntilClose("re_pri")
				if err != nil {
					return r, err
				}
				pr, err := ParsePriority(text)
				if err != nil {
					return r, jpverrors.Wrap(jpverrors.Parse, "re_pri", err)
				}
				r.Priority = append(r.Priority, pr)
			case "re_inf":
				text, err := p.textUntilClose("re_inf")
				if err != nil {
					return r, err
				}
				info, ok := entity.ParseReadingInfoKeyword(text)
				if !ok {
					return r, jpverrors.New(jpverrors.Parse, "unsupported re_inf "+text)
				}
				r.Info = append(r.Info, info)
			default:
				if err := p.skipElement(); err != nil {
					return r, err
				}
			}
		}
	}
}

func (p *Parser) parseSense() (Sense, error) {
	var s Sense
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return s, err
		}
		switch ev.Kind {
		case EventClose:
			return s, nil
		case EventOpen:
			switch ev.Name {
			case "xref":
				text, err := p.textUntilClose("xref")
				if err != nil {
					return s, err
				}
				s.XRef = append(s.XRef, text)
			case "ant":
				text, err := p.textUntilClose("ant")
				if err != nil {
					return s, err
				}
				s.Antonym = append(s.Antonym, text)
			case "s_inf":
				text, err := p.textUntilClose("s_inf")
				if err != nil {
					return s, err
				}
				s.Info = text
			case "stagk":
				text, err := p.textUntilClose("stagk")
				if err != nil {
					return s, err
				}
				s.StagK = append(s.StagK, text)
			case "stagr":
				text, err := p.textUntilClose("stagr")
				if err != nil {
					return s, err
				}
				s.StagR = append(s.StagR, text)
			case "pos":
				text, err := p.textUntilClose("pos")
				if err != nil {
					return s, err
				}
				v, ok := entity.ParsePartOfSpeechKeyword(text)
				if !ok {
					return s, jpverrors.New(jpverrors.Parse, "unsupported pos "+text)
				}
				s.POS = append(s.POS, v)
			case "misc":
				text, err := p.textUntilClose("misc")
				if err != nil {
					return s, err
				}
				v, ok := entity.ParseMiscellaneousKeyword(text)
				if !ok {
					return s, jpverrors.New(jpverrors.Parse, "unsupported misc "+text)
				}
				s.Misc = append(s.Misc, v)
			case "dial":
				text, err := p.textUntilClose("dial")
				if err != nil {
					return s, err
				}
				v, ok := entity.ParseDialectKeyword(text)
				if !ok {
					return s, jpverrors.New(jpverrors.Parse, "unsupported dial "+text)
				}
				s.Dialect = append(s.Dialect, v)
			case "field":
				text, err := p.textUntilClose("field")
				if err != nil {
					return s, err
				}
				v, ok := entity.ParseFieldKeyword(text)
				if !ok {
					return s, jpverrors.New(jpverrors.Parse, "unsupported field "+text)
				}
				s.Field = append(s.Field, v)
			case "lsource":
				src, err := p.parseSourceLanguage(ev.Attr)
				if err != nil {
					return s, err
				}
				s.Source = append(s.Source, src)
			case "gloss":
				g, err := p.parseGloss(ev.Attr)
				if err != nil {
					return s, err
				}
				s.Gloss = append(s.Gloss, g)
			case "example":
				ex, err := p.parseExample()
				if err != nil {
					return s, err
				}
				s.Examples = append(s.Examples, ex)
			default:
				if err := p.skipElement(); err != nil {
					return s, err
				}
			}
		}
	}
}

func (p *Parser) parseSourceLanguage(attr []xml.Attr) (SourceLanguage, error) {
	src := SourceLanguage{
		Lang:    attrOr(attr, "lang", "eng"),
		Partial: Attr(attr, "ls_type") == "part",
		Waseigo: Attr(attr, "ls_wasei") == "y",
	}
	text, err := p.textUntilClose("lsource")
	if err != nil {
		return src, err
	}
	src.Text = text
	return src, nil
}

func (p *Parser) parseGloss(attr []xml.Attr) (Glossary, error) {
	g := Glossary{
		Lang: attrOr(attr, "lang", "eng"),
		Type: Attr(attr, "g_type"),
	}
	text, err := p.textUntilClose("gloss")
	if err != nil {
		return g, err
	}
	g.Text = text
	return g, nil
}

func (p *Parser) parseExample() (Example, error) {
	var ex Example
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return ex, err
		}
		switch ev.Kind {
		case EventClose:
			return ex, nil
		case EventOpen:
			switch ev.Name {
			case "ex_srce":
				ex.Source.Kind = Attr(ev.Attr, "exsrc_type")
				text, err := p.textUntilClose("ex_srce")
				if err != nil {
					return ex, err
				}
				ex.Source.Text = text
			case "ex_text":
				text, err := p.textUntilClose("ex_text")
				if err != nil {
					return ex, err
				}
				ex.Text = text
			case "ex_sent":
				sent := ExampleSentence{Lang: attrOr(ev.Attr, "lang", "eng")}
				text, err := p.textUntilClose("ex_sent")
				if err != nil {
					return ex, err
				}
				sent.Text = text
				ex.Sentences = append(ex.Sentences, sent)
			default:
				if err := p.skipElement(); err != nil {
					return ex, err
				}
			}
		}
	}
}

// skipElement discards everything up to and including the matching
// close of the element just opened, including any nested children.
func (p *Parser) skipElement() error {
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

func attrOr(attr []xml.Attr, name, def string) string {
	if v := Attr(attr, name); v != "" {
		return v
	}
	return def
}
