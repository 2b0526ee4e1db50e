package jmdict

import "github.com/udoprog/jpv-go/pkg/inflect"

// ToInflectSource adapts a phrase entry into the shape pkg/inflect's
// Conjugate expects, carrying over the re_restr / search-only
// distinctions pkg/inflect's permutation walk relies on.
func (e Entry) ToInflectSource() inflect.Source {
	src := inflect.Source{
		KanjiForms:   make([]inflect.KanjiForm, len(e.KanjiElements)),
		ReadingForms: make([]inflect.ReadingForm, len(e.ReadingElements)),
		Senses:       make([]inflect.SenseTags, len(e.Senses)),
	}

	for i, k := range e.KanjiElements {
		src.KanjiForms[i] = inflect.KanjiForm{
			Text:       k.Text,
			SearchOnly: k.IsSearchOnly(),
		}
	}

	for i, r := range e.ReadingElements {
		src.ReadingForms[i] = inflect.ReadingForm{
			Text:              r.Text,
			NoKanji:           r.NoKanji,
			SearchOnly:        r.IsSearchOnly(),
			RestrictedToKanji: r.RestrictedToKanji,
		}
	}

	for i, s := range e.Senses {
		src.Senses[i] = inflect.SenseTags{
			POS:   s.POS,
			StagK: s.StagK,
			StagR: s.StagR,
		}
	}

	return src
}
