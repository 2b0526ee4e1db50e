package query

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udoprog/jpv-go/pkg/index"
	"github.com/udoprog/jpv-go/pkg/inflect"
)

// buildPhraseIndex runs a minimal JMdict-shaped document through
// index.Build and opens the result, following spec.md §8's "end-to-end
// scenarios" list (conjugation surface forms must be reachable from
// lookup after a full build/open round trip).
func buildPhraseIndex(t *testing.T, name, xmlDoc string) *SubIndex {
	t.Helper()
	buf, err := index.Build(context.Background(), index.NoopReporter{}, name, index.KindPhrase, strings.NewReader(xmlDoc))
	require.NoError(t, err)
	sub, err := OpenBuffer(name, buf)
	require.NoError(t, err)
	return sub
}

func findInflection(t *testing.T, ids []index.Id) index.Id {
	t.Helper()
	for _, id := range ids {
		if id.Source == index.SourceInflection {
			return id
		}
	}
	require.Fail(t, "no inflection id among lookup results")
	return index.Id{}
}

// Scenario 1 (spec.md §8): an Ichidan verb's polite past surface form
// must resolve back to its dictionary entry through an inflection id.
func TestE2EIchidanVerbPoliteCasual(t *testing.T) {
	const doc = `<JMdict><entry>
		<ent_seq>1</ent_seq>
		<k_ele><keb>食べる</keb></k_ele>
		<r_ele><reb>たべる</reb></r_ele>
		<sense><pos>v1</pos><gloss>to eat</gloss></sense>
	</entry></JMdict>`

	sub := buildPhraseIndex(t, "jmdict", doc)
	defer sub.Close()

	ids, err := sub.Lookup("食べました")
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	id := findInflection(t, ids)
	forms := inflect.Inflection(id.Forms)
	assert.True(t, forms.Contains(inflect.Honorific))
	assert.True(t, forms.Contains(inflect.Past))

	entry, err := sub.EntryAt(id)
	require.NoError(t, err)
	require.NotNil(t, entry.Phrase)
	assert.Equal(t, uint64(1), entry.Phrase.Sequence)
}

// Scenario 2 (spec.md §8): a Godan-u verb's casual past/te/negative
// surface forms all resolve back to the same dictionary entry.
func TestE2EGodanUVerbCasualForms(t *testing.T) {
	const doc = `<JMdict><entry>
		<ent_seq>2</ent_seq>
		<k_ele><keb>買う</keb></k_ele>
		<r_ele><reb>かう</reb></r_ele>
		<sense><pos>v5u</pos><gloss>to buy</gloss></sense>
	</entry></JMdict>`

	sub := buildPhraseIndex(t, "jmdict", doc)
	defer sub.Close()

	for _, surface := range []string{"買った", "買って", "買わない"} {
		ids, err := sub.Lookup(surface)
		require.NoError(t, err, surface)
		require.NotEmpty(t, ids, surface)
		id := findInflection(t, ids)
		entry, err := sub.EntryAt(id)
		require.NoError(t, err)
		require.NotNil(t, entry.Phrase)
		assert.Equal(t, uint64(2), entry.Phrase.Sequence, surface)
	}
}

// Scenario 3 (spec.md §8): the kuru irregular verb's past and negative
// forms undergo full stem substitution, not suffixation, and must
// still resolve correctly.
func TestE2EKuruIrregular(t *testing.T) {
	const doc = `<JMdict><entry>
		<ent_seq>3</ent_seq>
		<k_ele><keb>来る</keb></k_ele>
		<r_ele><reb>くる</reb></r_ele>
		<sense><pos>vk</pos><gloss>to come</gloss></sense>
	</entry></JMdict>`

	sub := buildPhraseIndex(t, "jmdict", doc)
	defer sub.Close()

	for _, surface := range []string{"来た", "こない"} {
		ids, err := sub.Lookup(surface)
		require.NoError(t, err, surface)
		require.NotEmpty(t, ids, surface)
		id := findInflection(t, ids)
		entry, err := sub.EntryAt(id)
		require.NoError(t, err)
		require.NotNil(t, entry.Phrase)
		assert.Equal(t, uint64(3), entry.Phrase.Sequence, surface)
	}
}

// Scenario 4 (spec.md §8): the irregular i-adjective yoi/ii conjugates
// its past form off the yo- stem, never the ii- reading.
func TestE2EYoiAdjectiveIrregularStem(t *testing.T) {
	const doc = `<JMdict><entry>
		<ent_seq>4</ent_seq>
		<k_ele><keb>良い</keb></k_ele>
		<r_ele><reb>いい</reb></r_ele>
		<sense><pos>adj-ix</pos><gloss>good</gloss></sense>
	</entry></JMdict>`

	sub := buildPhraseIndex(t, "jmdict", doc)
	defer sub.Close()

	ids, err := sub.Lookup("よかった")
	require.NoError(t, err)
	require.NotEmpty(t, ids)
	id := findInflection(t, ids)
	entry, err := sub.EntryAt(id)
	require.NoError(t, err)
	require.NotNil(t, entry.Phrase)
	assert.Equal(t, uint64(4), entry.Phrase.Sequence)

	// いかった (the naive い-stem past) must not appear: yoi's past
	// form is irregular and only derives from the yo- stem.
	ids, err = sub.Lookup("いかった")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// Scenario 5 (spec.md §8): Search's #pos filter is an AND across every
// requested tag, dropping entries that don't carry every one.
func TestE2ESearchPOSFilter(t *testing.T) {
	const doc = `<JMdict>
		<entry>
			<ent_seq>10</ent_seq>
			<k_ele><keb>食べる</keb></k_ele>
			<r_ele><reb>たべる</reb></r_ele>
			<sense><pos>v1</pos><pos>vt</pos><gloss>to eat</gloss></sense>
		</entry>
		<entry>
			<ent_seq>11</ent_seq>
			<k_ele><keb>見る</keb></k_ele>
			<r_ele><reb>みる</reb></r_ele>
			<sense><pos>v1</pos><gloss>to see</gloss></sense>
		</entry>
	</JMdict>`

	buf, err := index.Build(context.Background(), index.NoopReporter{}, "jmdict", index.KindPhrase, strings.NewReader(doc))
	require.NoError(t, err)
	sub, err := OpenBuffer("jmdict", buf)
	require.NoError(t, err)
	defer sub.Close()

	db := NewDatabase([]*SubIndex{sub}, nil)

	res, err := db.Search("#v1")
	require.NoError(t, err)
	var seqs []uint64
	for _, p := range res.Phrases {
		seqs = append(seqs, p.Entry.Sequence)
	}
	assert.ElementsMatch(t, []uint64{10, 11}, seqs)

	res, err = db.Search("#v1 #vt")
	require.NoError(t, err)
	seqs = nil
	for _, p := range res.Phrases {
		seqs = append(seqs, p.Entry.Sequence)
	}
	assert.ElementsMatch(t, []uint64{10}, seqs)
}

// Scenario 6 (spec.md §8): analyze("食べました今日は", 0) must rank
// the longest dictionary substring starting at position 0 first, via a
// shrinking-suffix best-weight walk.
func TestE2EAnalyzeShrinkingSuffix(t *testing.T) {
	const doc = `<JMdict><entry>
		<ent_seq>20</ent_seq>
		<k_ele><keb>食べる</keb></k_ele>
		<r_ele><reb>たべる</reb></r_ele>
		<sense><pos>v1</pos><gloss>to eat</gloss></sense>
	</entry></JMdict>`

	buf, err := index.Build(context.Background(), index.NoopReporter{}, "jmdict", index.KindPhrase, strings.NewReader(doc))
	require.NoError(t, err)
	sub, err := OpenBuffer("jmdict", buf)
	require.NoError(t, err)
	defer sub.Close()

	db := NewDatabase([]*SubIndex{sub}, nil)

	entries, err := db.Analyze("食べました今日は", 0)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "食べました", entries[0].Substring)
}
