package language

import "strings"

type entry struct {
	code2   string // ISO 639-1
	code3   string // ISO 639-2
	display string
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
}

var (
	byCode2 = map[string]*entry{}
	byCode3 = map[string]*entry{}
)

func init() {
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
	}
}

// StreamTag converts a language code to the ISO 639-2 tag used for subtitle
// stream metadata. Three-letter input passes through; unknown codes map to
// "und" (undetermined).
func StreamTag(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if e, ok := byCode2[code]; ok {
		return e.code3
	}
	if len(code) == 3 {
		return code
	}
	return "und"
}

// DisplayName returns a human-readable name for a language code, or the
// upper-cased code when unknown.
func DisplayName(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "Unknown"
	}
	if e, ok := byCode2[code]; ok {
		return e.display
	}
	if e, ok := byCode3[code]; ok {
		return e.display
	}
	return strings.ToUpper(code)
}
