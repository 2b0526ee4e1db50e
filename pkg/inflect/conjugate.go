package inflect

import (
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/udoprog/jpv-go/pkg/entity"
)

// NoKanji is the Reading-descriptor sentinel meaning "this form has no
// kanji element" (spec.md §3, "Reading descriptor... kanji-index-in-
// entry or sentinel 255").
const NoKanji uint8 = 255

// Kind classifies which family of paradigms produced a Conjugation.
type Kind uint8

const (
	KindVerb Kind = iota
	KindAdjective
)

// Fragment is one inflected surface, split into the part borrowed from
// the dictionary-form stem (prefix) and the part the paradigm row
// contributed (suffix), kept separately for both the kanji spelling
// and the kana reading so that furigana rendering and interning can
// treat the pure-kana suffix specially (spec.md §3, "Surface
// fragment").
type Fragment struct {
	TextPrefix, ReadingPrefix, Suffix string
}

// Text renders the kanji (or kana, if the entry has no kanji) surface.
func (fr Fragment) Text() string { return fr.TextPrefix + fr.Suffix }

// Reading renders the kana surface.
func (fr Fragment) Reading() string { return fr.ReadingPrefix + fr.Suffix }

// Inflections maps every form-set produced for one dictionary form to
// its surface fragment (spec.md §3, "Inflections map").
type Inflections map[Inflection]Fragment

// DictionaryForm is the (kanji, reading) pair a Conjugation was built
// from, plus the indices needed to encode it as a Reading descriptor.
type DictionaryForm struct {
	KanjiIndex, ReadingIndex uint8
	Kanji, Reading           string
}

// Conjugation is one (Reading, Inflections, Kind) result, matching the
// conjugate(entry) public contract (spec.md §4.2).
type Conjugation struct {
	Reading DictionaryForm
	Forms   Inflections
	Kind    Kind
}

// SenseTags carries one sense's part-of-speech set and its stagk/stagr
// restrictions (empty slices mean "applies to every kanji/reading").
type SenseTags struct {
	POS   []entity.PartOfSpeech
	StagK []string
	StagR []string
}

// KanjiForm is one kanji element of an entry.
type KanjiForm struct {
	Text       string
	SearchOnly bool
}

// ReadingForm is one reading element of an entry. RestrictedToKanji
// mirrors JMdict's re_restr list: when non-empty, the reading only
// pairs with the listed kanji elements.
type ReadingForm struct {
	Text              string
	NoKanji           bool
	SearchOnly        bool
	RestrictedToKanji []string
}

// Source is the conjugate() input: an entry's kanji elements, reading
// elements, and per-sense tag restrictions.
type Source struct {
	KanjiForms   []KanjiForm
	ReadingForms []ReadingForm
	Senses       []SenseTags
}

// Conjugate implements spec.md §4.2's public contract: it walks every
// (kanji, reading) permutation allowed by re_restr/stagk/stagr
// restrictions, determines the part-of-speech set that applies to
// that permutation, and for every part of speech with a known
// paradigm produces a Conjugation. Permutations or part-of-speech
// tags with no matching paradigm are silently skipped (spec.md §7,
// "bad per-tag paradigms in C2 are silently skipped (logged at warn
// level)").
func Conjugate(src Source) []Conjugation {
	var out []Conjugation

	kanjiForms := src.KanjiForms
	if len(kanjiForms) > int(NoKanji) {
		log.Warn().Int("count", len(kanjiForms)).Msg("inflect: too many kanji forms, truncating to fit Reading descriptor")
		kanjiForms = kanjiForms[:NoKanji]
	}
	if len(src.ReadingForms) > int(NoKanji) {
		log.Warn().Int("count", len(src.ReadingForms)).Msg("inflect: too many reading forms, truncating to fit Reading descriptor")
		src.ReadingForms = src.ReadingForms[:NoKanji]
	}

	for ri, reading := range src.ReadingForms {
		if reading.SearchOnly {
			continue
		}

		if reading.NoKanji || len(kanjiForms) == 0 {
			pos := applicablePOS(src.Senses, "", reading.Text)
			out = append(out, conjugatePermutation(DictionaryForm{
				KanjiIndex: NoKanji, ReadingIndex: uint8(ri),
				Reading: reading.Text,
			}, pos)...)
			continue
		}

		for ki, kanji := range kanjiForms {
			if kanji.SearchOnly {
				continue
			}
			if len(reading.RestrictedToKanji) > 0 && !containsString(reading.RestrictedToKanji, kanji.Text) {
				continue
			}

			pos := applicablePOS(src.Senses, kanji.Text, reading.Text)
			out = append(out, conjugatePermutation(DictionaryForm{
				KanjiIndex: uint8(ki), ReadingIndex: uint8(ri),
				Kanji: kanji.Text, Reading: reading.Text,
			}, pos)...)
		}
	}

	return out
}

// applicablePOS unions every sense's part-of-speech set that is not
// excluded by a stagk/stagr restriction not covering this permutation
// (spec.md §4.2 point 2).
func applicablePOS(senses []SenseTags, kanji, reading string) []entity.PartOfSpeech {
	seen := make(map[entity.PartOfSpeech]struct{})
	var out []entity.PartOfSpeech
	for _, s := range senses {
		if len(s.StagK) > 0 && kanji != "" && !containsString(s.StagK, kanji) {
			continue
		}
		if len(s.StagR) > 0 && !containsString(s.StagR, reading) {
			continue
		}
		for _, p := range s.POS {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func conjugatePermutation(form DictionaryForm, pos []entity.PartOfSpeech) []Conjugation {
	var out []Conjugation
	for _, p := range pos {
		forms, kind, ok := conjugateOne(form.Kanji, form.Reading, p)
		if !ok {
			continue
		}
		deriveCompoundForms(forms)
		out = append(out, Conjugation{Reading: form, Forms: forms, Kind: kind})
	}
	return out
}

// conjugateOne selects a paradigm for one part-of-speech tag and
// builds its Inflections map (spec.md §4.2 points 3-4). It reports
// ok=false for any tag with no known modern paradigm (archaic nidan,
// yodan, and minor irregular classes) as well as for a tag whose
// kanji/reading don't actually end in the terminal mora that tag
// implies (spec.md §4.2's "Failure semantics": "Bad stems (kanji/
// reading mismatch at the expected terminal mora) are silently
// skipped per-tag"), matching the original's match_char/extract_suru/
// extract_kuru/extract_ii returning None on a mismatched stem
// (original_source/crates/jpv-lib/src/inflection/conjugate.rs:555-564,
// 519-553).
func conjugateOne(kanji, reading string, pos entity.PartOfSpeech) (Inflections, Kind, bool) {
	switch pos {
	case entity.VerbIchidan, entity.VerbIchidanS, entity.VerbZuru:
		forms, ok := runVerbParadigm(kanji, reading, 1, false, Godan{ChauStem: "ちゃ"}, IchidanTe, []string{"る"}, "る")
		if !ok {
			logStemMismatch(pos, kanji, reading)
			return nil, 0, false
		}
		return forms, KindVerb, true
	case entity.VerbKuru:
		// 来る/來る: the kanji root always stands for whichever of
		// く/き/こ the paradigm row contributes, so the kanji side
		// never repeats that prefix (くる→きます is written 来ます,
		// never 来きます). No chau_stem: 来ちゃう is not generated.
		forms, ok := runVerbParadigm(kanji, reading, 2, true, Godan{}, KuruBase, []string{"来る", "來る"}, "くる")
		if !ok {
			logStemMismatch(pos, kanji, reading)
			return nil, 0, false
		}
		return forms, KindVerb, true
	case entity.VerbSuruIncluded, entity.VerbSuruSpecial:
		exclude := len([]rune(kanji)) >= 2 && hasRuneSuffix(kanji, "為る")
		kanjiSuffixes := []string{"する"}
		if exclude {
			kanjiSuffixes = []string{"為る"}
		}
		forms, ok := runVerbParadigm(kanji, reading, 2, exclude, Godan{ChauStem: "しちゃ"}, SuruBase, kanjiSuffixes, "する")
		if !ok {
			logStemMismatch(pos, kanji, reading)
			return nil, 0, false
		}
		return forms, KindVerb, true
	case entity.VerbGodanU:
		forms, ok := runGodan(kanji, reading, GodanU)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanUS:
		forms, ok := runGodan(kanji, reading, withChauStem(GodanU, "うちゃ"))
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanK:
		forms, ok := runGodan(kanji, reading, GodanKu)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanKS:
		forms, ok := runGodan(kanji, reading, GodanIku)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanG:
		forms, ok := runGodan(kanji, reading, GodanGu)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanS:
		forms, ok := runGodan(kanji, reading, GodanSu)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanT:
		forms, ok := runGodan(kanji, reading, GodanTsu)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanN:
		forms, ok := runGodan(kanji, reading, GodanNu)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanB:
		forms, ok := runGodan(kanji, reading, GodanBu)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanM:
		forms, ok := runGodan(kanji, reading, GodanMu)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.VerbGodanR, entity.VerbGodanRI, entity.VerbGodanAru, entity.VerbGodanUru:
		forms, ok := runGodan(kanji, reading, GodanRu)
		return godanResult(forms, ok, pos, kanji, reading)
	case entity.AdjectiveI:
		forms, ok := runAdjectiveParadigm(kanji, reading, 1, AdjectiveI, false, []string{"い"}, "い")
		if !ok {
			logStemMismatch(pos, kanji, reading)
			return nil, 0, false
		}
		return forms, KindAdjective, true
	case entity.AdjectiveIx:
		// Strip 2 runes, not 1: いい's reading must fully shed both
		// morae so the よ-stem rows don't inherit a stray い (stops
		// early at the kanji's Han boundary, same as VerbKuru above).
		// The reading must actually carry both morae (いい, よい read
		// いい) and the kanji (when present: 良い/好い, or いい itself)
		// must end in い — extract_ii's own terminal check.
		forms, ok := runAdjectiveParadigm(kanji, reading, 2, AdjectiveIi, true, []string{"い"}, "いい")
		if !ok {
			logStemMismatch(pos, kanji, reading)
			return nil, 0, false
		}
		return forms, KindAdjective, true
	case entity.AdjectiveNa:
		forms, _ := runAdjectiveParadigm(kanji, reading, 0, AdjectiveNa, false, nil, "")
		return forms, KindAdjective, true
	default:
		log.Warn().Str("pos", pos.Ident()).Msg("inflect: no paradigm for part of speech, skipping")
		return nil, 0, false
	}
}

// godanResult adapts runGodan's (Inflections, bool) result to
// conjugateOne's (Inflections, Kind, bool) return shape, logging the
// stem-mismatch skip on failure.
func godanResult(forms Inflections, ok bool, pos entity.PartOfSpeech, kanji, reading string) (Inflections, Kind, bool) {
	if !ok {
		logStemMismatch(pos, kanji, reading)
		return nil, 0, false
	}
	return forms, KindVerb, true
}

// logStemMismatch reports a kanji/reading pair that doesn't end in the
// terminal mora its part-of-speech tag implies (spec.md §7: logged at
// warn, then the permutation is silently skipped).
func logStemMismatch(pos entity.PartOfSpeech, kanji, reading string) {
	log.Warn().Str("pos", pos.Ident()).Str("kanji", kanji).Str("reading", reading).
		Msg("inflect: stem doesn't match paradigm's expected terminal mora, skipping")
}

// runGodan strips the godan dictionary-form ending (always the row's
// own う-column terminal kana, e.g. "く" for the く-class) and applies
// the full godan paradigm, failing if kanji/reading don't actually end
// in that terminal mora.
func runGodan(kanji, reading string, g Godan) (Inflections, bool) {
	return runVerbParadigm(kanji, reading, 1, false, g, GodanBase, []string{g.U}, g.U)
}

func withChauStem(g Godan, chauStem string) Godan {
	g.ChauStem = chauStem
	return g
}

func hasRuneSuffix(s, suffix string) bool {
	r, sr := []rune(s), []rune(suffix)
	if len(r) < len(sr) {
		return false
	}
	return string(r[len(r)-len(sr):]) == suffix
}

// hasAnyRuneSuffix reports whether s ends in one of suffixes. An empty
// suffixes list is vacuously satisfied (no terminal-mora constraint
// applies, e.g. the na-adjective copula).
func hasAnyRuneSuffix(s string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	for _, suf := range suffixes {
		if hasRuneSuffix(s, suf) {
			return true
		}
	}
	return false
}

// runVerbParadigm strips the dictionary-form ending from kanji and
// reading, invokes paradigm with a row collector, and derives the Chau
// family if the paradigm's class carries a chau stem. When
// excludeKanjiPrefix is set, the paradigm row's prefix column is
// applied to the reading only: the kanji root itself already carries
// that sound (来る/為る, whose kanji never changes across く/き/こ or
// さ/し/す/で).
//
// kanjiSuffixes/readingSuffix are the terminal mora this paradigm
// requires (e.g. "る" for ichidan, a godan row's own う-column kana, or
// "来る"/"來る" for kuru); ok is false — and no Fragment is built — when
// the reading doesn't end in readingSuffix, or a non-empty kanji
// doesn't end in any of kanjiSuffixes. Mirrors the original's
// match_char/extract_suru/extract_kuru returning None on a mismatched
// stem (spec.md §4.2's "Failure semantics").
func runVerbParadigm(kanji, reading string, stripRunes int, excludeKanjiPrefix bool, g Godan, paradigm func(RowFunc), kanjiSuffixes []string, readingSuffix string) (Inflections, bool) {
	if !hasRuneSuffix(reading, readingSuffix) {
		return nil, false
	}
	if kanji != "" && !hasAnyRuneSuffix(kanji, kanjiSuffixes) {
		return nil, false
	}

	kanjiStem := stripOkurigana(kanji, stripRunes)
	readingStem := stripOkurigana(reading, stripRunes)

	result := make(Inflections)
	paradigm(func(prefix, suffix string, forms []Form) {
		textPrefix := kanjiStem + prefix
		if excludeKanjiPrefix {
			textPrefix = kanjiStem
		}
		result[NewInflection(forms...)] = Fragment{
			TextPrefix:    textPrefix,
			ReadingPrefix: readingStem + prefix,
			Suffix:        suffix,
		}
	})

	if g.ChauStem != "" {
		GodanRows(GodanU, func(p2, s2 string, forms2 []Form) {
			tag := NewInflection(append(append([]Form{}, forms2...), Chau)...)
			result[tag] = Fragment{
				TextPrefix:    kanjiStem + g.ChauStem + p2,
				ReadingPrefix: readingStem + g.ChauStem + p2,
				Suffix:        s2,
			}
		})
	}

	return result, true
}

// runAdjectiveParadigm strips the dictionary-form ending and invokes
// one of the adjective paradigms. When ignoreTextPrefix is set (the
// yoi/ii class) the kanji surface never repeats the paradigm's
// い/よ-stem column: orthographically 良い stays single-い even though
// its reading doubles to いい, and 良かった never regains a よ.
//
// kanjiSuffixes/readingSuffix are the terminal mora check, mirroring
// the original's extract_ii (spec.md §4.2's "Failure semantics"); ok
// is false when the reading doesn't end in readingSuffix or a
// non-empty kanji doesn't end in any of kanjiSuffixes.
func runAdjectiveParadigm(kanji, reading string, stripRunes int, paradigm func(RowFunc), ignoreTextPrefix bool, kanjiSuffixes []string, readingSuffix string) (Inflections, bool) {
	if !hasRuneSuffix(reading, readingSuffix) {
		return nil, false
	}
	if kanji != "" && !hasAnyRuneSuffix(kanji, kanjiSuffixes) {
		return nil, false
	}

	kanjiStem := stripOkurigana(kanji, stripRunes)
	readingStem := stripOkurigana(reading, stripRunes)

	result := make(Inflections)
	paradigm(func(prefix, suffix string, forms []Form) {
		textPrefix := kanjiStem + prefix
		if ignoreTextPrefix {
			textPrefix = kanjiStem
		}
		result[NewInflection(forms...)] = Fragment{
			TextPrefix:    textPrefix,
			ReadingPrefix: readingStem + prefix,
			Suffix:        suffix,
		}
	})
	return result, true
}

// deriveCompoundForms layers the Stem- and Te-rooted derived forms
// onto an already-populated Inflections map (spec.md §4.2 point 5).
func deriveCompoundForms(result Inflections) {
	if stem, ok := result[NewInflection(Stem)]; ok {
		attach(result, stem, GodanRowsWith(GodanRu), f(TaGaRu), "たが")
		attach(result, stem, AdjectiveI, f(Tai), "た")
		attach(result, stem, AdjectiveI, f(EasyTo), "やす")
		attach(result, stem, AdjectiveI, f(HardTo), "にく")
	}

	if te, ok := result[NewInflection(Te)]; ok {
		attachVerb(result, te, Ichidan, f(TeIru, Te), "い")
		attachVerb(result, te, GodanRowsWith(GodanRu), f(TeAru, Te), "あ")
		attachVerb(result, te, GodanRowsWith(GodanIku), f(TeIku, Te), "い")
		attachVerb(result, te, GodanRowsWith(GodanU), f(TeShimau, Te), "しま")
		attachVerb(result, te, GodanRowsWith(GodanKu), f(TeOku, Te), "お")
		attachVerb(result, te, Kuru, f(TeKuru, Te), "")

		result[NewInflection(TeIru, Te, Short)] = Fragment{TextPrefix: te.Text(), ReadingPrefix: te.Reading(), Suffix: "る"}
		result[NewInflection(TeIru, Te, Short, Honorific)] = Fragment{TextPrefix: te.Text(), ReadingPrefix: te.Reading(), Suffix: "ます"}
		result[NewInflection(TeIru, Te, Past, Short)] = Fragment{TextPrefix: te.Text(), ReadingPrefix: te.Reading(), Suffix: "た"}
		result[NewInflection(Te, TeOku, Short)] = Fragment{TextPrefix: te.Text(), ReadingPrefix: te.Reading(), Suffix: "く"}
	}
}

// GodanRowsWith returns a paradigm function bound to one godan row
// table, used to attach auxiliary-verb paradigms to a Te stem.
func GodanRowsWith(g Godan) func(RowFunc) {
	return func(r RowFunc) { GodanRows(g, r) }
}

// attach layers an auxiliary paradigm onto an existing fragment (used
// for Stem + たが/たい/やすい/にくい).
func attach(result Inflections, base Fragment, auxParadigm func(RowFunc), tag []Form, auxStem string) {
	auxParadigm(func(prefix, suffix string, forms []Form) {
		combined := append(append([]Form{}, tag...), forms...)
		result[NewInflection(combined...)] = Fragment{
			TextPrefix:    base.Text() + auxStem + prefix,
			ReadingPrefix: base.Reading() + auxStem + prefix,
			Suffix:        suffix,
		}
	})
}

// attachVerb layers a full auxiliary-verb paradigm onto an existing Te
// fragment (used for ている/てある/ていく/てしまう/ておく/てくる).
func attachVerb(result Inflections, te Fragment, auxParadigm func(RowFunc), tag []Form, auxStem string) {
	auxParadigm(func(prefix, suffix string, forms []Form) {
		combined := append(append([]Form{}, tag...), forms...)
		result[NewInflection(combined...)] = Fragment{
			TextPrefix:    te.Text() + auxStem + prefix,
			ReadingPrefix: te.Reading() + auxStem + prefix,
			Suffix:        suffix,
		}
	})
}

// stripOkurigana removes up to n trailing runes from text, stopping
// early if it would remove a CJK ideograph. Kana endings strip in
// full (e.g. both runes of くる/する); kanji endings stop at the
// kanji root (来る strips only る, leaving 来), which is exactly the
// boundary the inflection paradigms expect their prefix column to
// attach to.
func stripOkurigana(text string, n int) string {
	if n <= 0 || text == "" {
		return text
	}
	runes := []rune(text)
	cut := len(runes)
	removed := 0
	for cut > 0 && removed < n {
		r := runes[cut-1]
		if unicode.Is(unicode.Han, r) {
			break
		}
		cut--
		removed++
	}
	return string(runes[:cut])
}
