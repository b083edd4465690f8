package matcher

import (
	"context"

	"github.com/stylematch/stylematch-backend/models"
)

// MatchThreshold is the minimum catalog similarity accepted as an
// identification. Exactly at the threshold still counts; only strictly
// below it falls through to the fallback vocabulary.
const MatchThreshold = 0.15

// Embedder produces text embeddings. *clip.Client satisfies it; tests use a
// local double.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// fallbackPhrase maps a short garment label to the richer phrase that gets
// embedded when matching against it.
type fallbackPhrase struct {
	label  string
	prompt string
}

// fallbackVocabulary covers common Western and Indian garments. It is only
// consulted when the catalog scan comes back below MatchThreshold.
var fallbackVocabulary = []fallbackPhrase{
	// Western dresses
	{"red dress", "a red dress"},
	{"black dress", "a black dress"},
	{"floral dress", "a floral print dress"},
	{"summer dress", "a light summer dress"},
	{"evening dress", "an elegant evening dress"},
	{"casual dress", "a casual everyday dress"},

	// Western tops
	{"white t-shirt", "a white cotton t-shirt"},
	{"black t-shirt", "a black cotton t-shirt"},
	{"blue shirt", "a blue shirt"},
	{"striped shirt", "a blue and white striped shirt"},
	{"blouse", "a feminine silk blouse"},
	{"sweater", "a cozy knit sweater"},
	{"tank top", "a simple tank top"},

	// Western bottoms
	{"blue jeans", "blue denim jeans"},
	{"black jeans", "black denim jeans"},
	{"denim skirt", "a denim skirt"},
	{"black skirt", "a black skirt"},
	{"leggings", "black leggings"},
	{"shorts", "denim shorts"},
	{"wide leg pants", "wide leg trousers"},

	// Western shoes
	{"sneakers", "white athletic sneakers"},
	{"high heels", "black high heel shoes"},
	{"sandals", "leather sandals"},
	{"boots", "ankle boots"},
	{"flats", "ballet flats"},

	// Western outerwear
	{"jacket", "a denim jacket"},
	{"blazer", "a formal blazer"},
	{"coat", "a winter coat"},
	{"cardigan", "a knit cardigan"},

	// Indian traditional - kurtis and tops
	{"red kurti", "a red Indian kurti"},
	{"blue kurti", "a blue Indian kurti"},
	{"green kurti", "a green Indian kurti"},
	{"yellow kurti", "a yellow Indian kurti"},
	{"pink kurti", "a pink Indian kurti"},
	{"printed kurti", "a printed Indian kurti"},
	{"embroidered kurti", "an embroidered Indian kurti"},
	{"anarkali kurti", "an anarkali style kurti"},
	{"long kurti", "a long Indian kurti"},
	{"short kurti", "a short Indian kurti"},
	{"kurti", "an Indian kurti top"},

	// Indian traditional - sarees
	{"silk saree", "a silk Indian saree"},
	{"cotton saree", "a cotton Indian saree"},
	{"banarasi saree", "a banarasi silk saree"},
	{"kanjeevaram saree", "a kanjeevaram silk saree"},
	{"printed saree", "a printed Indian saree"},
	{"embroidered saree", "an embroidered Indian saree"},
	{"georgette saree", "a georgette Indian saree"},
	{"chiffon saree", "a chiffon Indian saree"},
	{"saree", "an Indian saree"},

	// Indian traditional - bottoms
	{"palazzo pants", "flowy palazzo pants"},
	{"churidar", "a churidar bottom"},
	{"dhoti pants", "dhoti style pants"},
	{"salwar", "a salwar bottom"},
	{"patiala", "a patiala salwar"},

	// Indian traditional - dupattas and accessories
	{"dupatta", "a matching dupatta"},
	{"printed dupatta", "a printed dupatta"},
	{"embroidered dupatta", "an embroidered dupatta"},
	{"silver jewelry", "silver Indian jewelry"},
	{"gold jewelry", "gold Indian jewelry"},

	// Indian footwear
	{"juttis", "traditional Indian juttis"},
	{"mojaris", "traditional Indian mojaris"},
	{"kolhapuris", "traditional Kolhapuri sandals"},
	{"ethnic sandals", "ethnic Indian sandals"},
}

// Identify names the garment in an embedded image. It first scans the full
// catalog; a best similarity at or above MatchThreshold wins. Below that the
// catalog result is discarded and the fallback vocabulary is searched
// instead, whose best match is returned unconditionally.
//
// Catalog records with unparsable embeddings are skipped, never fatal.
func Identify(ctx context.Context, emb Embedder, catalog []models.CatalogItem, query []float64) string {
	best := "fashion item"
	bestSim := -1.0

	for _, item := range catalog {
		vec, err := ParseEmbedding(item.Embedding)
		if err != nil {
			continue
		}
		if sim := Cosine(query, vec); sim > bestSim {
			bestSim = sim
			best = item.Description
		}
	}

	if bestSim >= MatchThreshold {
		return best
	}

	return fallbackIdentify(ctx, emb, query)
}

// fallbackIdentify matches the query against the fallback vocabulary, each
// phrase embedded through the text path. Phrases that fail to embed are
// skipped.
func fallbackIdentify(ctx context.Context, emb Embedder, query []float64) string {
	best := "clothing item"
	bestSim := -1.0

	for _, fp := range fallbackVocabulary {
		vec, err := emb.EmbedText(ctx, fp.prompt)
		if err != nil {
			continue
		}
		if sim := Cosine(query, vec); sim > bestSim {
			bestSim = sim
			best = fp.label
		}
	}

	return best
}
