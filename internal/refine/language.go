package refine

import (
	"github.com/pemistahl/lingua-go"
)

// DetectLanguage guesses the dominant language of the transcript text.
// Used to flag a mismatch between the configured transcription language
// and what actually came out; the result is recorded in the shared
// context for the rewrite prompts.
func DetectLanguage(text string) string {
	detector := lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build()
	language, ok := detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return language.String()
}
