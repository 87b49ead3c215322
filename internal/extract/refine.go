package extract

import (
	"github.com/myrjola/smartcop/internal/fields"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const noWitnesses = "No witnesses"

// refine post-processes a candidate value. context is the text field-specific heuristics may look at: the whole
// utterance in targeted mode and the captured value itself in full-text mode.
func refine(key fields.Key, candidate, context string) string {
	switch key { //nolint:exhaustive // other fields are used verbatim
	case fields.FullName:
		return refineName(candidate)
	case fields.Age:
		return refineAge(candidate, context)
	case fields.DateOfBirth:
		return refineDate(candidate, context, false)
	case fields.DateTimeOfIncident:
		return refineDate(candidate, context, true)
	case fields.Witnesses:
		return refineWitnesses(candidate)
	default:
		return strings.TrimSpace(candidate)
	}
}

var (
	selfIntro = regexp.MustCompile(
		`(?i)^(?:my name is|my name|name is|i am|i'm|this is|मेरा नाम है|मेरा नाम|नाम है|मैं हूं|मैं|main hun|main)\s+`)
	trailingCopulas = map[string]struct{}{
		"है": {}, "हूं": {}, "हूँ": {}, "hai": {}, "hun": {}, "hoon": {}, "hu": {},
		"ہے": {}, "ہوں": {}, "ਹੈ": {}, "ਹਾਂ": {}, "আছে": {}, "আছি": {}, "आहे": {}, "છે": {},
	}
)

// refineName drops self-introductions and trailing copulas and title-cases every word.
func refineName(candidate string) string {
	s := strings.TrimSpace(selfIntro.ReplaceAllString(strings.TrimSpace(candidate), ""))
	words := strings.Fields(s)
	for len(words) > 0 {
		if _, ok := trailingCopulas[strings.ToLower(words[len(words)-1])]; !ok {
			break
		}
		words = words[:len(words)-1]
	}
	for i, w := range words {
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ")
}

func titleCase(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

// agePrecedence is ordered from the most to the least explicit way of stating an age.
var agePrecedence = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:i am|मैं|main)\s+(\d+)\s*(?:years old|साल का|साल की|years|साल)`),
	regexp.MustCompile(`(?i)(?:my age is|मेरी उम्र है|उम्र है|age is)\s+(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:years old|साल का|साल की|years|साल)`),
	regexp.MustCompile(`(\d+)`),
}

func refineAge(candidate, context string) string {
	for _, re := range agePrecedence {
		if m := re.FindStringSubmatch(context); m != nil {
			return m[1]
		}
	}
	return strings.TrimSpace(candidate)
}

var (
	numericDate = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{4}|\d{4}[-/]\d{1,2}[-/]\d{1,2}`)
	clockTime   = regexp.MustCompile(`(?i)^[\s,]*(?:at\s+|को\s+)?(\d{1,2}:\d{2}(?:\s*[ap]\.?m\.?)?|\d{1,2}\s*[ap]\.?m\.?)`)
)

// refineDate prefers a numeric date inside the candidate, then anywhere in context, and falls back to the trimmed
// candidate. With withTime a clock time directly following the date is kept.
func refineDate(candidate, context string, withTime bool) string {
	if date, ok := findDate(candidate, withTime); ok {
		return date
	}
	if date, ok := findDate(context, withTime); ok {
		return date
	}
	return strings.TrimSpace(candidate)
}

func findDate(text string, withTime bool) (string, bool) {
	loc := numericDate.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	date := text[loc[0]:loc[1]]
	if withTime {
		if m := clockTime.FindStringSubmatch(text[loc[1]:]); m != nil {
			return date + " " + m[1], true
		}
	}
	return date, true
}

var (
	negatives = map[string]struct{}{
		"no": {}, "none": {}, "nobody": {}, "nope": {}, "nahi": {}, "nahin": {},
		"नहीं": {}, "नही": {}, "नहि": {}, "नाही": {}, "না": {}, "নাই": {}, "ਨਹੀਂ": {}, "نہیں": {},
		"இல்லை": {}, "లేదు": {}, "ಇಲ್ಲ": {}, "ഇല്ല": {}, "ନାହିଁ": {}, "નથી": {},
	}
	// negativeFillers may surround a negative without changing its meaning, e.g. "there were no witnesses".
	negativeFillers = map[string]struct{}{
		"there": {}, "were": {}, "was": {}, "any": {}, "one": {}, "koi": {}, "कोई": {}, "थे": {}, "था": {},
		"witness": {}, "witnesses": {}, "गवाह": {},
	}
	affirmative = regexp.MustCompile(`(?i)^(?:yes|yeah|haan|हां|हाँ|जी हां)[\s,:]+`)
)

// isNegativeOnly reports whether the utterance consists only of negative words and fillers.
func isNegativeOnly(text string) bool {
	words := strings.Fields(strings.ToLower(text))
	negative := false
	for _, w := range words {
		w = strings.Trim(w, ".,!?।")
		if _, ok := negatives[w]; ok {
			negative = true
			continue
		}
		if _, ok := negativeFillers[w]; ok {
			continue
		}
		return false
	}
	return negative
}

func refineWitnesses(candidate string) string {
	if isNegativeOnly(candidate) {
		return noWitnesses
	}
	return strings.TrimSpace(affirmative.ReplaceAllString(strings.TrimSpace(candidate), ""))
}
