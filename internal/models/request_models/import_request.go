package request_models

// ImportRequest carries raw catalog records exported from an external source.
// Records arrive as loose objects because source schemas disagree on column
// casing; the import service resolves a field mapping per batch before any
// row is touched.
type ImportRequest struct {
	Attractions        []map[string]any `json:"attractions"`
	Restaurants        []map[string]any `json:"restaurants"`
	GenerateEmbeddings *bool            `json:"generateEmbeddings"`
	BatchSize          int              `json:"batchSize"`
}

func (r *ImportRequest) EmbeddingsEnabled() bool {
	return r.GenerateEmbeddings == nil || *r.GenerateEmbeddings
}

func (r *ImportRequest) EffectiveBatchSize() int {
	if r.BatchSize <= 0 || r.BatchSize > 100 {
		return 25
	}
	return r.BatchSize
}
