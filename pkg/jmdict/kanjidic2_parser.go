package jmdict

import (
	"io"
	"strconv"

	"github.com/udoprog/jpv-go/pkg/jpverrors"
)

// KanjiParser streams Character values out of a kanjidic2 XML
// document, skipping the leading <header> block. Grounded on
// kanjidic2/mod.rs/parser.rs's element set; driven by the same
// recursive-descent approach as Parser above.
type KanjiParser struct {
	ts   *TokenStream
	saw  bool
	done bool
}

// NewKanjiParser constructs a KanjiParser reading from r.
func NewKanjiParser(r io.Reader) *KanjiParser {
	return &KanjiParser{ts: NewTokenStream(r, DictionaryEntityMap())}
}

// Next returns the next Character, or (nil, nil) once the document is
// exhausted.
func (p *KanjiParser) Next() (*Character, error) {
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
			if ev.Name != "kanjidic2" {
				return nil, jpverrors.New(jpverrors.Parse, "expected kanjidic2 root element, got "+ev.Name)
			}
			break
		}
		p.saw = true
	}

	for {
		ev, err := p.ts.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case EventClose, EventEOF:
			p.done = true
			return nil, nil
		case EventOpen:
			switch ev.Name {
			case "header":
				if err := p.skipElement(); err != nil {
					return nil, err
				}
			case "character":
				return p.parseCharacter()
			default:
				return nil, jpverrors.New(jpverrors.Parse, "unexpected element "+ev.Name)
			}
		}
	}
}

func (p *KanjiParser) parseCharacter() (*Character, error) {
	var c Character
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case EventClose:
			return &c, nil
		case EventEOF:
			return nil, jpverrors.New(jpverrors.Parse, "unexpected end of document in <character>")
		case EventOpen:
			switch ev.Name {
			case "literal":
				text, err := p.textUntilClose("literal")
				if err != nil {
					return nil, err
				}
				c.Literal = text
			case "codepoint":
				cps, err := p.parseSimpleGroup("codepoint", "cp_value", "cp_type")
				if err != nil {
					return nil, err
				}
				for _, v := range cps {
					c.CodePoints = append(c.CodePoints, CodePoint(v))
				}
			case "radical":
				rs, err := p.parseSimpleGroup("radical", "rad_value", "rad_type")
				if err != nil {
					return nil, err
				}
				for _, v := range rs {
					c.Radicals = append(c.Radicals, Radical(v))
				}
			case "misc":
				m, err := p.parseMisc()
				if err != nil {
					return nil, err
				}
				c.Misc = m
			case "dic_number":
				refs, err := p.parseDicNumber()
				if err != nil {
					return nil, err
				}
				c.DictionaryReferences = refs
			case "query_code":
				qcs, err := p.parseQueryCode()
				if err != nil {
					return nil, err
				}
				c.QueryCodes = qcs
			case "reading_meaning":
				if err := p.parseReadingMeaning(&c); err != nil {
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

type simpleValue struct {
	Text string
	Type string
}

// parseSimpleGroup parses a container element holding one or more
// children that each carry their text plus a single "<attrName>"
// attribute (codepoint/cp_value, radical/rad_value).
func (p *KanjiParser) parseSimpleGroup(container, child, attrName string) ([]simpleValue, error) {
	var out []simpleValue
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case EventClose:
			return out, nil
		case EventEOF:
			return nil, jpverrors.New(jpverrors.Parse, "unexpected end of document in <"+container+">")
		case EventOpen:
			if ev.Name != child {
				if err := p.skipElement(); err != nil {
					return nil, err
				}
				continue
			}
			ty := Attr(ev.Attr, attrName)
			text, err := p.textUntilClose(child)
			if err != nil {
				return nil, err
			}
			out = append(out, simpleValue{Text: text, Type: ty})
		}
	}
}

func (p *KanjiParser) parseMisc() (Misc, error) {
	var m Misc
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return m, err
		}
		switch ev.Kind {
		case EventClose:
			return m, nil
		case EventEOF:
			return m, jpverrors.New(jpverrors.Parse, "unexpected end of document in <misc>")
		case EventOpen:
			switch ev.Name {
			case "grade":
				text, err := p.textUntilClose("grade")
				if err != nil {
					return m, err
				}
				n, err := strconv.Atoi(text)
				if err != nil {
					return m, jpverrors.Wrap(jpverrors.Parse, "grade", err)
				}
				m.Grade, m.HasGrade = n, true
			case "stroke_count":
				text, err := p.textUntilClose("stroke_count")
				if err != nil {
					return m, err
				}
				n, err := strconv.Atoi(text)
				if err != nil {
					return m, jpverrors.Wrap(jpverrors.Parse, "stroke_count", err)
				}
				m.StrokeCounts = append(m.StrokeCounts, n)
			case "variant":
				ty := Attr(ev.Attr, "var_type")
				text, err := p.textUntilClose("variant")
				if err != nil {
					return m, err
				}
				m.Variant = &Variant{Text: text, Type: ty}
			case "freq":
				text, err := p.textUntilClose("freq")
				if err != nil {
					return m, err
				}
				n, err := strconv.Atoi(text)
				if err != nil {
					return m, jpverrors.Wrap(jpverrors.Parse, "freq", err)
				}
				m.Freq, m.HasFreq = n, true
			case "jlpt":
				text, err := p.textUntilClose("jlpt")
				if err != nil {
					return m, err
				}
				n, err := strconv.Atoi(text)
				if err != nil {
					return m, jpverrors.Wrap(jpverrors.Parse, "jlpt", err)
				}
				m.JLPT, m.HasJLPT = n, true
			case "rad_name":
				text, err := p.textUntilClose("rad_name")
				if err != nil {
					return m, err
				}
				m.RadicalNames = append(m.RadicalNames, text)
			default:
				if err := p.skipElement(); err != nil {
					return m, err
				}
			}
		}
	}
}

func (p *KanjiParser) parseDicNumber() ([]DictionaryReference, error) {
	var out []DictionaryReference
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case EventClose:
			return out, nil
		case EventEOF:
			return nil, jpverrors.New(jpverrors.Parse, "unexpected end of document in <dic_number>")
		case EventOpen:
			if ev.Name != "dic_ref" {
				if err := p.skipElement(); err != nil {
					return nil, err
				}
				continue
			}
			ref := DictionaryReference{
				Type:   Attr(ev.Attr, "dr_type"),
				Volume: Attr(ev.Attr, "m_vol"),
				Page:   Attr(ev.Attr, "m_page"),
			}
			text, err := p.textUntilClose("dic_ref")
			if err != nil {
				return nil, err
			}
			ref.Text = text
			out = append(out, ref)
		}
	}
}

func (p *KanjiParser) parseQueryCode() ([]QueryCode, error) {
	var out []QueryCode
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case EventClose:
			return out, nil
		case EventEOF:
			return nil, jpverrors.New(jpverrors.Parse, "unexpected end of document in <query_code>")
		case EventOpen:
			if ev.Name != "q_code" {
				if err := p.skipElement(); err != nil {
					return nil, err
				}
				continue
			}
			qc := QueryCode{
				Type:         Attr(ev.Attr, "qc_type"),
				SkipMisclass: Attr(ev.Attr, "skip_misclass"),
			}
			text, err := p.textUntilClose("q_code")
			if err != nil {
				return nil, err
			}
			qc.Text = text
			out = append(out, qc)
		}
	}
}

func (p *KanjiParser) parseReadingMeaning(c *Character) error {
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case EventClose:
			return nil
		case EventEOF:
			return jpverrors.New(jpverrors.Parse, "unexpected end of document in <reading_meaning>")
		case EventOpen:
			switch ev.Name {
			case "rmgroup":
				if err := p.parseRMGroup(c); err != nil {
					return err
				}
			case "nanori":
				text, err := p.textUntilClose("nanori")
				if err != nil {
					return err
				}
				c.Nanori = append(c.Nanori, text)
			default:
				if err := p.skipElement(); err != nil {
					return err
				}
			}
		}
	}
}

func (p *KanjiParser) parseRMGroup(c *Character) error {
	for {
		ev, err := p.ts.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case EventClose:
			return nil
		case EventEOF:
			return jpverrors.New(jpverrors.Parse, "unexpected end of document in <rmgroup>")
		case EventOpen:
			switch ev.Name {
			case "reading":
				ty := Attr(ev.Attr, "r_type")
				text, err := p.textUntilClose("reading")
				if err != nil {
					return err
				}
				c.Readings = append(c.Readings, Reading{Text: text, Type: ty})
			case "meaning":
				lang := Attr(ev.Attr, "m_lang")
				text, err := p.textUntilClose("meaning")
				if err != nil {
					return err
				}
				c.Meanings = append(c.Meanings, Meaning{Text: text, Lang: lang})
			default:
				if err := p.skipElement(); err != nil {
					return err
				}
			}
		}
	}
}

func (p *KanjiParser) textUntilClose(name string) (string, error) {
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

func (p *KanjiParser) skipElement() error {
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
