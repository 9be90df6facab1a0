package scenes

// All contains all scenes, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]Scene{
	"primitives": primitiveScenes,
	"arc":        arcScenes,
	"text":       textScenes,
	"scale":      scaleScenes,
	"tiny":       tinyScenes,
}
