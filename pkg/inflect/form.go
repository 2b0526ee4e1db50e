// Package inflect implements C2: the data-driven Japanese inflection
// engine. Grounded on original_source/crates/jpv-lib/src/inflection/
// {mod.rs,macros.rs,conjugate.rs}.
package inflect

// Form is one of the 31 atomic morphological markers. Declared in the
// same order as the original's `form!` macro invocation so that
// Form.ALL and bit positions match the grounding source exactly.
type Form uint8

const (
	Stem Form = iota
	Honorific
	Negative
	Te
	TeAru
	TeIru
	TeIku
	TeKuru
	TeOku
	TeShimau
	Tai
	EasyTo
	HardTo
	TaGaRu
	Causative
	Chau
	Command
	CommandTeKudasai
	CommandYo
	Conditional
	Darou
	Hypothetical
	Kya
	Passive
	Past
	Potential
	Simultaneous
	Volitional
	LooksLike
	Short
	Conversation

	formCount
)

type formMeta struct {
	describe, title, url string
}

var formTable = [formCount]formMeta{
	Stem:             {"stem", "stem / infinite", ""},
	Honorific:        {"敬語", "敬語 (ていご) honorific speech", ""},
	Negative:         {"not", "not doing ~, the absense of ~", ""},
	Te:               {"～て", "～te form, by itself acts as a command", "https://www.tofugu.com/japanese-grammar/te-form/"},
	TeAru:            {"～てある", "～てある, resulting, is / has been done", "https://www.tofugu.com/japanese-grammar/tearu/"},
	TeIru:            {"～ている", "～ている, progressive, shows that something is currently happening or ongoing", "https://www.tofugu.com/japanese-grammar/verb-continuous-form-teiru/"},
	TeIku:            {"～ていく", "～ていく, starting, to start, to continue, to go on", "https://www.tofugu.com/japanese-grammar/teiku-tekuru/"},
	TeKuru:           {"～てくる", "～てくる, to do .. and come back, to become, to continue, to start ~", "https://www.tofugu.com/japanese-grammar/teiku-tekuru/"},
	TeOku:            {"～ておく", "～ておく, to do something in advance", "https://www.tofugu.com/japanese-grammar/teoku/"},
	TeShimau:         {"～てしまう", "～てしまう, to do something by accident, to finish completely", ""},
	Tai:              {"～たい", "～たい, expressing desire", "https://www.tofugu.com/japanese-grammar/tai-form/"},
	EasyTo:           {"easy", "～やすい, easy to do ~", "https://www.tofugu.com/japanese-grammar/yasui/"},
	HardTo:           {"hard", "～にくい, hard to do ~", "https://www.tofugu.com/japanese-grammar/nikui/"},
	TaGaRu:           {"～たがる", "～たがる, noting desire", "https://www.tofugu.com/japanese-grammar/tagaru-form/"},
	Causative:        {"caus", "causative, make ~ do something, let / allow ~", "https://www.tofugu.com/japanese-grammar/verb-causative-form-saseru/"},
	Chau:             {"～ちゃう", "～ちゃう, to do something by accident, to finish completely", ""},
	Command:          {"cmd", "command forms, よ / なさい / ください", "https://www.tofugu.com/japanese-grammar/verb-command-form-ro/"},
	CommandTeKudasai: {"～てください", "～てください, alternate command form", "https://www.tofugu.com/japanese-grammar/kudasai/"},
	CommandYo:        {"～よ", "～よ, alternate command form", ""},
	Conditional:      {"cond", "～たら, conditional, if ~, when ~", "https://www.tofugu.com/japanese-grammar/conditional-form-tara/"},
	Darou:            {"～だろう", "～だろう, alternate form", "https://www.tofugu.com/japanese-grammar/darou/"},
	Hypothetical:     {"hyp", "hypothetical, if ~", ""},
	Kya:              {"～きゃ", "～きゃ, alternative hypothetical negative, if not ~", ""},
	Passive:          {"psv", "～られる, passive, ~ was done to someone or something", "https://www.tofugu.com/japanese-grammar/verb-passive-form-rareru/"},
	Past:             {"past", "過去形 (かこけい) past tense", ""},
	Potential:        {"pot", "potential, can do ~", "https://www.tofugu.com/japanese-grammar/verb-potential-form-reru/"},
	Simultaneous:     {"～ながら", "～ながら, simultaneous, while ~", "https://www.tofugu.com/japanese-grammar/verb-nagara/"},
	Volitional:       {"vol", "～よう, volitional / presumptive, let's do ~", "https://www.tofugu.com/japanese-grammar/verb-volitional-form-you/"},
	LooksLike:        {"～そう", "～そう, looks like", "https://www.tofugu.com/japanese-grammar/verb-sou/"},
	Short:            {"short", "alternate shortened form", ""},
	Conversation:     {"clq", "conversational / colloquial", ""},
}

// AllForms lists all 31 markers in declared order (spec.md §8,
// "Inflection::all() ... iterating it yields all 31 markers in
// declared order").
func AllForms() []Form {
	out := make([]Form, formCount)
	for i := range out {
		out[i] = Form(i)
	}
	return out
}

func (f Form) Describe() string { return formTable[f].describe }
func (f Form) Title() string    { return formTable[f].title }

// URL returns the tutorial URL for the form, or "" if none is defined.
func (f Form) URL() string { return formTable[f].url }
