// Command jpvquery is the minimal front-end over C5 (pkg/query):
// spec.md §6 documents the CLI surface "for completeness" as an
// external collaborator, positional query terms plus --pos/--list-pos/
// --inflection/--examples/--lang/--any-lang/--no-furigana/--seq/--polite
// flags. This file wires exactly that surface onto
// pkg/query.Database, leaving richer front-ends (HTTP, clipboard,
// desktop activation) out of scope per spec.md §1.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/udoprog/jpv-go/internal/config"
	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/inflect"
	"github.com/udoprog/jpv-go/pkg/jmdict"
	"github.com/udoprog/jpv-go/pkg/kana"
	"github.com/udoprog/jpv-go/pkg/query"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("query failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		indexDir    string
		posFilters  []string
		listPOS     bool
		inflection  bool
		examples    bool
		lang        string
		anyLang     bool
		noFurigana  bool
		seqStrs     []string
		polite      bool
	)

	cmd := &cobra.Command{
		Use:   "jpvquery [terms...]",
		Short: "Look up Japanese words, kanji and names against a packed index",
		RunE: func(cmd *cobra.Command, args []string) error {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)

			if listPOS {
				for _, p := range entity.AllPartsOfSpeech() {
					fmt.Printf("%-10s %s\n", p.Ident(), p.Help())
				}
				return nil
			}

			cfg := config.DefaultQuery(indexDir)
			db, subs, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				for _, s := range subs {
					_ = s.Close()
				}
			}()

			if lang == "" {
				lang = "eng"
			}

			for _, seqStr := range seqStrs {
				seq, err := strconv.ParseUint(seqStr, 10, 32)
				if err != nil {
					log.Warn().Str("seq", seqStr).Msg("not a valid sequence id, ignoring")
					continue
				}
				e, err := db.SequenceToEntry(seq)
				if err != nil {
					fmt.Printf("seq %d: not found (%v)\n", seq, err)
					continue
				}
				printPhrase(*e, inflection, examples, lang, anyLang, noFurigana, polite)
			}

			if len(args) == 0 && len(seqStrs) == 0 {
				return nil
			}

			var pos []entity.PartOfSpeech
			for _, p := range posFilters {
				if v, ok := entity.ParsePartOfSpeechKeyword(p); ok {
					pos = append(pos, v)
				} else {
					log.Warn().Str("pos", p).Msg("unknown part-of-speech filter, ignoring")
				}
			}

			queryStr := strings.Join(args, " ")
			for _, p := range pos {
				queryStr += " #" + p.Ident()
			}

			result, err := db.Search(queryStr)
			if err != nil {
				return err
			}

			for _, ph := range result.Phrases {
				printPhrase(ph.Entry, inflection, examples, lang, anyLang, noFurigana, polite)
			}
			for _, n := range result.Names {
				printName(n.Entry)
			}
			for _, c := range result.Characters {
				printCharacter(c)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&indexDir, "index-dir", "indices", "directory containing packed .bin indices")
	cmd.Flags().StringSliceVar(&posFilters, "pos", nil, "restrict results to this part-of-speech (repeatable)")
	cmd.Flags().BoolVar(&listPOS, "list-pos", false, "enumerate part-of-speech values and exit")
	cmd.Flags().BoolVar(&inflection, "inflection", false, "print the full conjugation table for each result")
	cmd.Flags().BoolVar(&examples, "examples", false, "include example sentences")
	cmd.Flags().StringVar(&lang, "lang", "eng", "gloss language (ISO 639-2)")
	cmd.Flags().BoolVar(&anyLang, "any-lang", false, "include glosses in every language")
	cmd.Flags().BoolVar(&noFurigana, "no-furigana", false, "suppress furigana annotation")
	cmd.Flags().StringSliceVar(&seqStrs, "seq", nil, "fetch by sequence id (repeatable)")
	cmd.Flags().BoolVar(&polite, "polite", false, "include polite-form variants when printing inflections")

	return cmd
}

func openDatabase(cfg config.Query) (*query.Database, []*query.SubIndex, error) {
	var subs []*query.SubIndex
	for _, src := range cfg.Enabled() {
		s, err := query.OpenFile(src.Name, src.Path)
		if err != nil {
			return nil, subs, fmt.Errorf("open %s: %w", src.Path, err)
		}
		subs = append(subs, s)
	}
	return query.NewDatabase(subs, cfg.Disabled()), subs, nil
}

func printPhrase(e jmdict.Entry, showInflection, showExamples bool, lang string, anyLang, noFurigana, polite bool) {
	headword := ""
	if len(e.KanjiElements) > 0 {
		headword = e.KanjiElements[0].Text
	}
	reading := ""
	if len(e.ReadingElements) > 0 {
		reading = e.ReadingElements[0].Text
	}

	switch {
	case headword != "" && !noFurigana:
		fmt.Println(kana.Full{Text: headword, Reading: reading}.Furigana())
	case headword != "":
		fmt.Printf("%s\n", headword)
	default:
		fmt.Printf("%s\n", reading)
	}

	for i, s := range e.Senses {
		if !anyLang && !s.IsLang(lang) {
			continue
		}
		var glosses []string
		for _, g := range s.Gloss {
			gl := g.Lang
			if gl == "" {
				gl = "eng"
			}
			if anyLang || gl == lang {
				glosses = append(glosses, g.Text)
			}
		}
		if len(glosses) == 0 {
			continue
		}
		fmt.Printf("  %d. %s\n", i+1, strings.Join(glosses, "; "))
		if showExamples {
			for _, ex := range s.Examples {
				fmt.Printf("     ex: %s\n", ex.Text)
			}
		}
	}

	if showInflection {
		printInflections(e, polite)
	}
}

func printInflections(e jmdict.Entry, polite bool) {
	conjugations := inflect.Conjugate(e.ToInflectSource())
	for _, c := range conjugations {
		for forms, frag := range c.Forms {
			if !polite && forms.Contains(inflect.Honorific) {
				continue
			}
			var names []string
			for _, f := range forms.Iter() {
				names = append(names, f.Describe())
			}
			fmt.Printf("    %-40s %s (%s)\n", strings.Join(names, "+"), frag.Text(), frag.Reading())
		}
	}
}

func printName(e jmdict.NameEntry) {
	kanji := strings.Join(e.Kanji, ", ")
	var readings []string
	for _, r := range e.Readings {
		readings = append(readings, r.Text)
	}
	fmt.Printf("%s (%s)\n", kanji, strings.Join(readings, ", "))
	for _, t := range e.Translations {
		fmt.Printf("  %s\n", t.Text)
	}
}

func printCharacter(c jmdict.Character) {
	fmt.Printf("%s\n", c.Literal)
	var meanings []string
	for _, m := range c.Meanings {
		if m.Lang == "" {
			meanings = append(meanings, m.Text)
		}
	}
	if len(meanings) > 0 {
		fmt.Printf("  meaning: %s\n", strings.Join(meanings, "; "))
	}
	var kun, on []string
	for _, r := range c.Readings {
		switch r.Type {
		case "ja_kun":
			kun = append(kun, r.Text)
		case "ja_on":
			on = append(on, r.Text)
		}
	}
	if len(kun) > 0 {
		fmt.Printf("  kun: %s\n", strings.Join(kun, ", "))
	}
	if len(on) > 0 {
		fmt.Printf("  on: %s\n", strings.Join(on, ", "))
	}
	if len(c.Nanori) > 0 {
		fmt.Printf("  nanori: %s\n", strings.Join(c.Nanori, ", "))
	}
}
