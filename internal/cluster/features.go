package cluster

import "github.com/hargabyte/lx/internal/concept"

// buildFeatureMatrix produces one feature row per topic: a TF-IDF vector
// over the topic's name and description concatenated with four structural
// scalars describing its position in the graph. Rows follow the graph's
// topic insertion order.
func buildFeatureMatrix(g *concept.Graph, topics []*concept.Node, maxFeatures int) ([]string, [][]float64) {
	ids := make([]string, len(topics))
	docs := make([]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
		docs[i] = t.Description + " " + t.Name
	}

	v := newVectorizer(docs, maxFeatures)

	matrix := make([][]float64, len(topics))
	for i, t := range topics {
		row := v.vector(docs[i])
		row = append(row,
			float64(g.InDegree(t.ID)),
			float64(g.OutDegree(t.ID)),
			float64(g.SubtopicCount(t.ID)),
			float64(g.PrerequisiteCount(t.ID)),
		)
		matrix[i] = row
	}
	return ids, matrix
}
