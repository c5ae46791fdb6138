package domain

// WordEntry is one headword of the exported list. ID is zero until the
// list has been sorted and numbered.
type WordEntry struct {
	ID    int    `json:"id"`
	En    string `json:"en"`
	Ru    string `json:"ru"`
	Level Level  `json:"level"`
}

// Observation is a word seen in a source under a level, before dedupe.
type Observation struct {
	Word   string
	Level  Level
	Source string
}

// Source describes one configured input document.
type Source struct {
	Path string
	Kind SourceKind
	// Level is the fixed level of a one-level text export. Empty for
	// documents that carry level labels inline.
	Level Level
	// Levels lists the labels recognised inside the document. Empty means
	// all levels.
	Levels []Level
	// SectionEnd, when set, gates extraction: a level label opens the
	// section and a line containing SectionEnd closes it.
	SectionEnd string
}

// Recognises reports whether l is a label the source's level tracker acts on.
func (s Source) Recognises(l Level) bool {
	if !l.IsValid() {
		return false
	}
	if len(s.Levels) == 0 {
		return true
	}
	for _, known := range s.Levels {
		if known == l {
			return true
		}
	}
	return false
}
