package language

import "strings"

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	display string // Human-readable name
}

var languages = []entry{
	{"en", "eng", "English"},
	{"es", "spa", "Spanish"},
	{"fr", "fra", "French"},
	{"de", "deu", "German"},
	{"it", "ita", "Italian"},
	{"pt", "por", "Portuguese"},
	{"ja", "jpn", "Japanese"},
	{"ko", "kor", "Korean"},
	{"zh", "zho", "Chinese"},
	{"ru", "rus", "Russian"},
	{"ar", "ara", "Arabic"},
	{"hi", "hin", "Hindi"},
	{"nl", "nld", "Dutch"},
	{"pl", "pol", "Polish"},
	{"sv", "swe", "Swedish"},
	{"da", "dan", "Danish"},
	{"no", "nor", "Norwegian"},
	{"fi", "fin", "Finnish"},
}

var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	return nil
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsEnglish reports whether the code resolves to English. The detail view
// shows the translated English title only for non-English originals.
func IsEnglish(code string) bool {
	e := lookup(code)
	return e != nil && e.code2 == "en"
}
