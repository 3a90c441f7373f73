package recipegen

import (
	"regexp"
	"strings"
)

// Recipe is one suggestion extracted from a generator reply. Field names are
// serialized capitalized because that is the shape the mobile client reads.
type Recipe struct {
	Name         string   `json:"Name"`
	Ingredients  []string `json:"Ingredients"`
	Instructions string   `json:"Instructions"`
}

// SkipReason explains why a chunk of the reply produced no recipe.
type SkipReason string

const (
	SkipNone        SkipReason = ""
	SkipEmptyChunk  SkipReason = "empty_chunk"
	SkipTooFewLines SkipReason = "too_few_lines"
)

// ChunkResult is the outcome for one "Recipe Name:" section of a reply.
type ChunkResult struct {
	Index  int
	Raw    string
	Recipe *Recipe
	Skip   SkipReason
}

// Parsed reports whether the chunk yielded a recipe.
func (c ChunkResult) Parsed() bool {
	return c.Recipe != nil
}

// Result holds every chunk outcome of a reply in reply order.
type Result struct {
	Chunks []ChunkResult
}

// Recipes returns the successfully parsed recipes in reply order.
func (r Result) Recipes() []Recipe {
	recipes := make([]Recipe, 0, len(r.Chunks))
	for _, c := range r.Chunks {
		if c.Recipe != nil {
			recipes = append(recipes, *c.Recipe)
		}
	}
	return recipes
}

// Skipped returns the chunks that produced no recipe.
func (r Result) Skipped() []ChunkResult {
	var skipped []ChunkResult
	for _, c := range r.Chunks {
		if c.Recipe == nil {
			skipped = append(skipped, c)
		}
	}
	return skipped
}

type parseOptions struct {
	multilineInstructions bool
}

// ParseOption tunes ParseDetailed.
type ParseOption func(*parseOptions)

// WithMultilineInstructions keeps every line from the Instructions marker up to the
// next Ingredients marker or the end of the chunk, joined with newlines. Without it
// only the text on the marker line is kept.
func WithMultilineInstructions() ParseOption {
	return func(o *parseOptions) { o.multilineInstructions = true }
}

var nameMarkerRe = regexp.MustCompile(regexp.QuoteMeta(NameMarker) + `\s*`)

// Parse extracts the recipes from a generator reply. Text before the first
// "Recipe Name:" marker is ignored and malformed sections are dropped; it never
// fails, so an empty result means the reply held no usable recipe.
func Parse(raw string) []Recipe {
	return ParseDetailed(raw).Recipes()
}

// ParseDetailed is Parse with a per-chunk outcome, so callers can tell a reply with
// no markers from one whose sections were all malformed.
func ParseDetailed(raw string, opts ...ParseOption) Result {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	parts := nameMarkerRe.Split(raw, -1)
	if len(parts) < 2 {
		return Result{}
	}

	// parts[0] is the preamble before the first marker.
	chunks := parts[1:]
	result := Result{Chunks: make([]ChunkResult, 0, len(chunks))}
	for i, chunk := range chunks {
		result.Chunks = append(result.Chunks, parseChunk(i, chunk, o))
	}
	return result
}

func parseChunk(index int, chunk string, o parseOptions) ChunkResult {
	res := ChunkResult{Index: index, Raw: chunk}

	body := strings.TrimSpace(chunk)
	if body == "" {
		res.Skip = SkipEmptyChunk
		return res
	}

	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	if len(lines) < 2 {
		res.Skip = SkipTooFewLines
		return res
	}

	recipe := &Recipe{
		Name:        lines[0],
		Ingredients: []string{},
	}

	if line, ok := firstWithPrefix(lines, IngredientsMarker); ok {
		recipe.Ingredients = splitIngredients(strings.TrimPrefix(line, IngredientsMarker))
	}

	if o.multilineInstructions {
		recipe.Instructions = collectInstructions(lines)
	} else if line, ok := firstWithPrefix(lines, InstructionsMarker); ok {
		recipe.Instructions = strings.TrimSpace(strings.TrimPrefix(line, InstructionsMarker))
	}

	res.Recipe = recipe
	return res
}

func firstWithPrefix(lines []string, prefix string) (string, bool) {
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return line, true
		}
	}
	return "", false
}

func splitIngredients(list string) []string {
	ingredients := []string{}
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			ingredients = append(ingredients, item)
		}
	}
	return ingredients
}

// collectInstructions joins the non-blank lines from the first Instructions marker
// until the next Ingredients marker.
func collectInstructions(lines []string) string {
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, InstructionsMarker) {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	steps := []string{}
	if first := strings.TrimSpace(strings.TrimPrefix(lines[start], InstructionsMarker)); first != "" {
		steps = append(steps, first)
	}
	for _, line := range lines[start+1:] {
		if strings.HasPrefix(line, IngredientsMarker) {
			break
		}
		if line != "" {
			steps = append(steps, line)
		}
	}
	return strings.Join(steps, "\n")
}

// Format writes recipes back out in the grammar BuildPrompt asks for. Parsing the
// output of Format yields the same recipes.
func Format(recipes []Recipe) string {
	blocks := make([]string, 0, len(recipes))
	for _, r := range recipes {
		blocks = append(blocks, NameMarker+" "+r.Name+"\n"+
			IngredientsMarker+" "+strings.Join(r.Ingredients, ", ")+"\n"+
			InstructionsMarker+" "+r.Instructions)
	}
	return strings.Join(blocks, "\n\n")
}
