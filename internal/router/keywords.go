package router

import "strings"

// SetName identifies one of the built-in keyword sets.
type SetName string

const (
	SetAudio     SetName = "audio"
	SetImage     SetName = "image"
	SetCode      SetName = "code"
	SetReasoning SetName = "reasoning"
	SetQuickEdit SetName = "quick-edit"
)

// SetNames lists the built-in sets in display order.
var SetNames = []SetName{SetAudio, SetImage, SetCode, SetReasoning, SetQuickEdit}

// The built-in keyword tables. All entries are lowercase; matching is plain
// substring containment against the normalized prompt, so stems like
// "transkrib" intentionally hit inside longer words ("transkribiere").
// The tables mix German and English terms and pin the exact matching
// behavior; do not reorder or translate them.
var (
	audioKeywords = []string{
		"voice", "audio", "sprache", "mikrofon", "aufnehmen", "aufnahme",
		"sprachnachricht", "transkrib", "diktat",
	}

	imageKeywords = []string{
		"bild", "screenshot", "photo", "foto", "diagram", "image",
		"grafik", "ocr", "erkenne im bild", "beschreibe das bild",
	}

	codeKeywords = []string{
		"code", "funktion", "refactor", "refaktor", "bug", "exception",
		"stack trace", "stacktrace", "kompilier", "buildfehler",
		"unit test", "unittest", "pytest", "gradle", "maven",
		".py", ".js", ".ts", ".java", ".kt", ".cs", ".cpp", ".c", ".rb",
		".go", ".rs", "dockerfile", "requirements.txt", "package.json",
	}

	reasoningKeywords = []string{
		"architektur", "strategie", "begründ", "warum", "ableitung",
		"beweise", "beweis", "argumentiere", "schritte", "plan",
		"roadmap", "trade-off", "tradeoff", "konzept", "threat model",
		"modelliere", "analyse", "algorithm", "komplexität", "optimier",
		"logik", "puzzle", "rätsel", "fehlerursache", "ursachenanalyse",
		"entscheid", "abwegung",
	}

	quickEditKeywords = []string{
		"kurz", "zusammenfassung", "tl;dr", "stichpunkte", "bullet points",
		"umformulieren", "paraphras", "kürzen", "rewrite", "übersetz",
		"translate", "emoji", "titelvorschläge", "slogan",
	}
)

func defaultSets() map[SetName][]string {
	return map[SetName][]string{
		SetAudio:     audioKeywords,
		SetImage:     imageKeywords,
		SetCode:      codeKeywords,
		SetReasoning: reasoningKeywords,
		SetQuickEdit: quickEditKeywords,
	}
}

// containsAny reports whether text contains any of the given terms as a
// substring. Short-circuits on the first hit.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
