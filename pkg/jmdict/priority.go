package jmdict

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority is one JMdict priority tag (re_pri / ke_pri): either one of
// the fixed corpus tags (news1, news2, ichi1, ichi2, spec1, spec2,
// gai1, gai2) or a frequency-of-use band (nfXX, XX in 01..48, lower is
// more frequent).
type Priority struct {
	Corpus string // "news", "ichi", "spec", "gai", or "" for nf-bands
	Rank   uint8  // 1 or 2 for corpus tags; the band number for nf
	NF     bool   // true if this is an "nfXX" frequency band
}

// ParsePriority parses a single re_pri/ke_pri token such as "news1" or
// "nf12".
func ParsePriority(s string) (Priority, error) {
	if strings.HasPrefix(s, "nf") {
		n, err := strconv.Atoi(strings.TrimPrefix(s, "nf"))
		if err != nil || n < 1 || n > 48 {
			return Priority{}, fmt.Errorf("invalid nf priority %q", s)
		}
		return Priority{NF: true, Rank: uint8(n)}, nil
	}
	for _, corpus := range []string{"news", "ichi", "spec", "gai"} {
		if strings.HasPrefix(s, corpus) {
			n, err := strconv.Atoi(strings.TrimPrefix(s, corpus))
			if err != nil || (n != 1 && n != 2) {
				return Priority{}, fmt.Errorf("invalid %s priority %q", corpus, s)
			}
			return Priority{Corpus: corpus, Rank: uint8(n)}, nil
		}
	}
	return Priority{}, fmt.Errorf("unsupported priority %q", s)
}

// Weight returns this priority tag's contribution to the priority
// multiplier of the entry weight formula (spec.md §4.5.1): the
// "1" members of news/ichi/spec/gai weigh 2.0 (common, core
// vocabulary), the "2" members 1.3, and the nf frequency bands fall
// linearly from 2.0 at nf01 (most frequent) to about 1.02 at nf48.
func (p Priority) Weight() float64 {
	if p.NF {
		return 2.0 - (float64(p.Rank-1) / 48.0)
	}
	if p.Rank == 1 {
		return 2.0
	}
	return 1.3
}
