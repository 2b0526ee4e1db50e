package query

import (
	"sort"
	"strings"

	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/index"
	"github.com/udoprog/jpv-go/pkg/jmdict"
	"github.com/udoprog/jpv-go/pkg/kana"
)

// PhraseResult is one surviving phrase match, with its accumulated
// payload sources (spec.md §4.5, "merge the matching id's source into
// an accumulated sources set") and computed weight.
type PhraseResult struct {
	Sub     *SubIndex
	Offset  uint32
	Entry   jmdict.Entry
	Sources map[index.SourceKind]struct{}
	Weight  float64
}

// NameResult is the name-entry analogue of PhraseResult.
type NameResult struct {
	Sub     *SubIndex
	Offset  uint32
	Entry   jmdict.NameEntry
	Sources map[index.SourceKind]struct{}
	Weight  float64
}

// SearchResult is search's {phrases, names, characters} output
// (spec.md §4.5, "search(input) -> {phrases, names, characters}").
type SearchResult struct {
	Phrases    []PhraseResult
	Names      []NameResult
	Characters []jmdict.Character
}

type resultKey struct {
	sub    *SubIndex
	offset uint32
}

// Search implements spec.md §4.5's search(input) algorithm.
func (d *Database) Search(input string) (*SearchResult, error) {
	remainder, tags := stripPOSTags(input)
	remainder = strings.TrimSpace(remainder)

	characters := map[string]jmdict.Character{}

	var seed []ResultID
	var err error
	if (remainder == "" || isOnlyWildcards(remainder)) && len(tags) > 0 {
		seed = d.ByPOS(tags)
	} else {
		if err := populateKanji(d, remainder, characters); err != nil {
			return nil, err
		}
		seed, err = d.Lookup(remainder)
		if err != nil {
			return nil, err
		}
	}

	phraseAcc := map[resultKey]*PhraseResult{}
	var phraseOrder []resultKey
	nameAcc := map[resultKey]*NameResult{}
	var nameOrder []resultKey

	for _, r := range seed {
		entry, err := r.Sub.EntryAt(r.ID)
		if err != nil {
			return nil, err
		}
		switch entry.Category {
		case index.CategoryKanji:
			c := *entry.Kanji
			if _, ok := characters[c.Literal]; !ok {
				characters[c.Literal] = c
			}
		case index.CategoryPhrase:
			if len(tags) > 0 && !coversAllTags(*entry.Phrase, tags) {
				continue
			}
			k := resultKey{r.Sub, r.ID.Offset}
			acc, ok := phraseAcc[k]
			if !ok {
				acc = &PhraseResult{Sub: r.Sub, Offset: r.ID.Offset, Entry: *entry.Phrase, Sources: map[index.SourceKind]struct{}{}}
				phraseAcc[k] = acc
				phraseOrder = append(phraseOrder, k)
			}
			acc.Sources[r.ID.Source] = struct{}{}
		case index.CategoryName:
			k := resultKey{r.Sub, r.ID.Offset}
			acc, ok := nameAcc[k]
			if !ok {
				acc = &NameResult{Sub: r.Sub, Offset: r.ID.Offset, Entry: *entry.Name, Sources: map[index.SourceKind]struct{}{}}
				nameAcc[k] = acc
				nameOrder = append(nameOrder, k)
			}
			acc.Sources[r.ID.Source] = struct{}{}
		}
	}

	phrases := make([]PhraseResult, 0, len(phraseOrder))
	for _, k := range phraseOrder {
		acc := phraseAcc[k]
		acc.Weight = phraseWeight(acc.Entry, remainder, acc.Sources)
		phrases = append(phrases, *acc)
	}
	sort.SliceStable(phrases, func(i, j int) bool { return phrases[i].Weight > phrases[j].Weight })

	names := make([]NameResult, 0, len(nameOrder))
	for _, k := range nameOrder {
		acc := nameAcc[k]
		acc.Weight = float64(acc.Entry.Weight(remainder))
		names = append(names, *acc)
	}
	sort.SliceStable(names, func(i, j int) bool { return names[i].Weight > names[j].Weight })

	// Step 5: every kanji-element text referenced by a surviving
	// result pulls its character into the output too.
	for _, p := range phrases {
		for _, k := range p.Entry.KanjiElements {
			if err := populateKanji(d, k.Text, characters); err != nil {
				return nil, err
			}
		}
	}
	for _, n := range names {
		for _, k := range n.Entry.Kanji {
			if err := populateKanji(d, k, characters); err != nil {
				return nil, err
			}
		}
	}

	chars := make([]jmdict.Character, 0, len(characters))
	for _, c := range characters {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i].Literal < chars[j].Literal })

	return &SearchResult{Phrases: phrases, Names: names, Characters: chars}, nil
}

// stripPOSTags implements search step 1: peel #tag tokens off the end
// of input, silently dropping ones that aren't a known part-of-speech
// identifier (spec.md §7, "unknown pos tokens in search filters are
// dropped silently").
func stripPOSTags(input string) (string, []entity.PartOfSpeech) {
	fields := strings.Fields(input)
	var tags []entity.PartOfSpeech
	end := len(fields)
	for end > 0 {
		f := fields[end-1]
		if !strings.HasPrefix(f, "#") {
			break
		}
		if pos, ok := entity.ParsePartOfSpeechKeyword(strings.TrimPrefix(f, "#")); ok {
			tags = append(tags, pos)
		}
		end--
	}
	return strings.Join(fields[:end], " "), tags
}

func isOnlyWildcards(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != wildcardASCII && r != wildcardFullWidth {
			return false
		}
	}
	return true
}

// coversAllTags reports whether the union of every sense's pos set
// contains every tag requested (spec.md §4.5, search step 3).
func coversAllTags(e jmdict.Entry, tags []entity.PartOfSpeech) bool {
	have := make(map[entity.PartOfSpeech]struct{})
	for _, s := range e.Senses {
		for _, p := range s.POS {
			have[p] = struct{}{}
		}
	}
	for _, t := range tags {
		if _, ok := have[t]; !ok {
			return false
		}
	}
	return true
}

// populateKanji implements spec.md §4.5's populate_kanji: every
// non-kana, non-ASCII-letter character in input is looked up as a
// single-character trie key, and any Kanji{Literal} payload it finds
// is decoded into seen (keyed by literal, so repeats are free).
func populateKanji(d *Database, input string, seen map[string]jmdict.Character) error {
	for _, r := range input {
		if kana.IsKana(r) || isASCIILetter(r) {
			continue
		}
		key := string(r)
		for _, s := range d.subs {
			ids, err := s.ExactLookup(key)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if id.Source != index.SourceKanjiLiteral {
					continue
				}
				c, err := index.DecodeCharacter(s.data, id.Offset)
				if err != nil {
					return err
				}
				if _, ok := seen[c.Literal]; !ok {
					seen[c.Literal] = c
				}
			}
		}
	}
	return nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
