package hintgen

import (
	"fmt"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// PromptStyle selects how a hint is phrased.
type PromptStyle string

const (
	// StyleDirect asks for a plain "to <verb> <object>" phrase.
	StyleDirect PromptStyle = "direct"
	// StyleNoun asks for a description of the object that carries the
	// nuance of the collocation, without naming the action.
	StyleNoun PromptStyle = "noun"
)

// BuildPrompt creates the prompt for one action/object pair.
func BuildPrompt(style PromptStyle, action domain.WordEntry, object domain.ObjectWord) string {
	if style == StyleNoun {
		return buildNounPrompt(action, object)
	}
	return buildDirectPrompt(action, object)
}

func buildDirectPrompt(action domain.WordEntry, object domain.ObjectWord) string {
	return fmt.Sprintf(`Write a short English hint for a Japanese collocation used in a vocabulary game.

Action word: %s (%s)
Object: %s (%s)

Describe what the combination means in plain, natural English.

Rules:
- Prefer the form "to [verb] [object]" or an equally natural phrase
- Be concrete about the meaning of the pair, not poetic
- At most 8 words

Examples:
- 聞く + 話 → to listen to someone talk
- する + 仕事 → to do one's job
- 書く + 手紙 → to write a letter

Reply with the hint text only.`, action.Word, action.English, object.Word, object.English)
}

func buildNounPrompt(action domain.WordEntry, object domain.ObjectWord) string {
	return fmt.Sprintf(`Write a short English hint for a Japanese vocabulary game.

The learner already sees the word %s (%s) and must guess which noun goes with it.
The answer is %s (%s).

Describe the noun itself and hint at what the pair means together.

Rules:
- Do not restate the action (avoid phrases like "things you eat" or "items you buy")
- Mention the nuance of the collocation when it differs from the literal words
- Between 2 and 8 words

Examples:
- する + 電話 → device; together means "to call"
- 買う + 車 → expensive motorized transportation
- 飲む + 薬 → medicine taken by mouth

Hint for %s:`, action.Word, action.English, object.Word, object.English, object.Word)
}
