package recipegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeRecipeReply = `Sure! Here are some ideas.

Recipe Name: Dal
Ingredients: lentils, water, salt
Instructions: boil and simmer

Recipe Name: Jeera Rice
Ingredients: rice, cumin,  ghee , ,salt
Instructions: fry cumin in ghee, add rice and water, cook covered

Recipe Name:   Masala Omelette
Ingredients: eggs, onion, green chilli
Instructions: whisk, pour, fold`

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestParse_NoMarker(t *testing.T) {
	assert.Empty(t, Parse("I could not think of any recipes with those ingredients."))
	assert.Empty(t, Parse("recipe name: lowercase marker does not count\nIngredients: a"))
}

func TestParse_SingleRecipe(t *testing.T) {
	recipes := Parse("Recipe Name: Dal\nIngredients: lentils, water, salt\nInstructions: boil and simmer")

	require.Len(t, recipes, 1)
	assert.Equal(t, "Dal", recipes[0].Name)
	assert.Equal(t, []string{"lentils", "water", "salt"}, recipes[0].Ingredients)
	assert.Equal(t, "boil and simmer", recipes[0].Instructions)
}

func TestParse_MultipleRecipesWithPreamble(t *testing.T) {
	recipes := Parse(threeRecipeReply)

	require.Len(t, recipes, 3)
	assert.Equal(t, "Dal", recipes[0].Name)
	assert.Equal(t, "Jeera Rice", recipes[1].Name)
	assert.Equal(t, []string{"rice", "cumin", "ghee", "salt"}, recipes[1].Ingredients)
	assert.Equal(t, "fry cumin in ghee, add rice and water, cook covered", recipes[1].Instructions)
	assert.Equal(t, "Masala Omelette", recipes[2].Name)
}

func TestParse_NameOnlyChunkIsDropped(t *testing.T) {
	reply := "Recipe Name: Lonely\n\nRecipe Name: Dal\nIngredients: lentils\nInstructions: boil"

	recipes := Parse(reply)

	require.Len(t, recipes, 1)
	assert.Equal(t, "Dal", recipes[0].Name)
}

func TestParse_MissingSections(t *testing.T) {
	recipes := Parse("Recipe Name: Toast\nServe warm.")

	require.Len(t, recipes, 1)
	assert.Equal(t, "Toast", recipes[0].Name)
	assert.NotNil(t, recipes[0].Ingredients)
	assert.Empty(t, recipes[0].Ingredients)
	assert.Equal(t, "", recipes[0].Instructions)
}

func TestParse_IndentedLinesAndCRLF(t *testing.T) {
	recipes := Parse("Recipe Name: Poha\r\n   Ingredients: flattened rice, peanuts\r\n\tInstructions: rinse, temper, mix\r\n")

	require.Len(t, recipes, 1)
	assert.Equal(t, "Poha", recipes[0].Name)
	assert.Equal(t, []string{"flattened rice", "peanuts"}, recipes[0].Ingredients)
	assert.Equal(t, "rinse, temper, mix", recipes[0].Instructions)
}

func TestParse_FirstMatchingLineWins(t *testing.T) {
	reply := "Recipe Name: Upma\nIngredients: semolina\nIngredients: ignored\nInstructions: roast\nInstructions: ignored"

	recipes := Parse(reply)

	require.Len(t, recipes, 1)
	assert.Equal(t, []string{"semolina"}, recipes[0].Ingredients)
	assert.Equal(t, "roast", recipes[0].Instructions)
}

func TestParse_SingleLineInstructionsByDefault(t *testing.T) {
	reply := "Recipe Name: Khichdi\nIngredients: rice, dal\nInstructions: wash rice and dal\npressure cook for 3 whistles\nserve hot"

	recipes := Parse(reply)

	require.Len(t, recipes, 1)
	assert.Equal(t, "wash rice and dal", recipes[0].Instructions)
}

func TestParseDetailed_MultilineInstructions(t *testing.T) {
	reply := "Recipe Name: Khichdi\nInstructions: wash rice and dal\n\npressure cook for 3 whistles\nserve hot\nIngredients: rice, dal"

	recipes := ParseDetailed(reply, WithMultilineInstructions()).Recipes()

	require.Len(t, recipes, 1)
	assert.Equal(t, "wash rice and dal\npressure cook for 3 whistles\nserve hot", recipes[0].Instructions)
	assert.Equal(t, []string{"rice", "dal"}, recipes[0].Ingredients)
}

func TestParseDetailed_MultilineInstructionsOnNextLine(t *testing.T) {
	reply := "Recipe Name: Halwa\nIngredients: semolina, sugar\nInstructions:\n1. roast semolina\n2. add syrup"

	recipes := ParseDetailed(reply, WithMultilineInstructions()).Recipes()

	require.Len(t, recipes, 1)
	assert.Equal(t, "1. roast semolina\n2. add syrup", recipes[0].Instructions)
}

func TestParseDetailed_SkipReasons(t *testing.T) {
	reply := "preamble\nRecipe Name:   \nRecipe Name: Only a name\nRecipe Name: Dal\nIngredients: lentils\nInstructions: boil"

	result := ParseDetailed(reply)

	require.Len(t, result.Chunks, 3)
	assert.Equal(t, SkipEmptyChunk, result.Chunks[0].Skip)
	assert.Equal(t, SkipTooFewLines, result.Chunks[1].Skip)
	assert.True(t, result.Chunks[2].Parsed())
	assert.Equal(t, SkipNone, result.Chunks[2].Skip)

	assert.Len(t, result.Skipped(), 2)
	require.Len(t, result.Recipes(), 1)
	assert.Equal(t, "Dal", result.Recipes()[0].Name)
}

func TestParseDetailed_NoMarkerHasNoChunks(t *testing.T) {
	result := ParseDetailed("nothing useful here")
	assert.Empty(t, result.Chunks)
	assert.Empty(t, result.Recipes())
}

func TestParse_NeverEmitsBlankIngredients(t *testing.T) {
	replies := []string{
		threeRecipeReply,
		"Recipe Name: X\nIngredients: , ,  ,\nInstructions: none",
		"Recipe Name: Y\nIngredients:\nInstructions:",
	}
	for _, reply := range replies {
		for _, r := range Parse(reply) {
			assert.NotEmpty(t, r.Name)
			for _, ing := range r.Ingredients {
				assert.NotEqual(t, "", strings.TrimSpace(ing))
			}
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	first := Parse(threeRecipeReply)
	require.NotEmpty(t, first)

	second := Parse(Format(first))

	assert.Equal(t, first, second)
}

func TestFormat_RoundTripEmptyFields(t *testing.T) {
	first := Parse("Recipe Name: Toast\nServe warm.")
	require.Len(t, first, 1)

	assert.Equal(t, first, Parse(Format(first)))
}
