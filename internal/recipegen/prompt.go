// Package recipegen turns a list of ingredients into an LLM instruction prompt and
// parses the model's plain-text reply back into recipe records.
//
// The prompt and the parser share one textual grammar:
//
//	Recipe Name: <name>
//	Ingredients: <comma-separated list>
//	Instructions: <steps>
//
// with a blank line between recipes. The parser relies on that grammar but cannot
// enforce it, so every deviation degrades to fewer records rather than an error.
package recipegen

import (
	"fmt"
	"strings"
)

// DefaultRecipeCount is used when the caller asks for zero or a negative number of recipes.
const DefaultRecipeCount = 5

// Grammar markers shared by BuildPrompt, Parse and Format.
const (
	NameMarker         = "Recipe Name:"
	IngredientsMarker  = "Ingredients:"
	InstructionsMarker = "Instructions:"
)

// BuildPrompt returns the instruction sent to the generator for the given ingredients.
func BuildPrompt(ingredients []string, count int) string {
	if count <= 0 {
		count = DefaultRecipeCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suggest %d best recipes using these ingredients: %s. ", count, strings.Join(ingredients, ", "))
	b.WriteString("Only return the recipe names, ingredients, and instructions for each recipe. ")
	b.WriteString("Format each recipe like this:\n\n")
	b.WriteString(NameMarker + " <name>\n")
	b.WriteString(IngredientsMarker + " <list>\n")
	b.WriteString(InstructionsMarker + " <steps>\n\n")
	b.WriteString("Do not include any extra commentary or formatting.")
	return b.String()
}
