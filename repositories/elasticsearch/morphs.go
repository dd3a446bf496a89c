package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"leopa/api/models"
	"leopa/api/models/indexes"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/mitchellh/mapstructure"
)

// the catalog is small; one page holds all of it
const maxMorphDocuments = 10000

func GetMorphs(ctx context.Context, cfg *models.Config, es *elasticsearch.Client) ([]indexes.MorphDefinition, error) {
	var buf bytes.Buffer
	query := map[string]interface{}{
		"size": maxMorphDocuments,
		"query": map[string]interface{}{
			"match_all": map[string]interface{}{},
		},
		"sort": []map[string]interface{}{
			{"id.keyword": map[string]string{"order": "asc"}},
		},
	}

	// encode the query
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("encoding morph query: %w", err)
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		fmt.Println(buf.String())
	}

	// Perform the search request.
	res, searchErr := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(cfg.Elasticsearch.MorphIndex),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
	)
	if searchErr != nil {
		return nil, fmt.Errorf("searching %s: %w", cfg.Elasticsearch.MorphIndex, searchErr)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("searching %s: %s", cfg.Elasticsearch.MorphIndex, res.Status())
	}

	// Declared an empty interface
	result := make(map[string]interface{})
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding morph search response: %w", err)
	}

	fmt.Printf("Query End: %s\n", time.Now())

	return decodeMorphHits(result)
}

// decodeMorphHits pulls each hit's _source out of a search response.
func decodeMorphHits(result map[string]interface{}) ([]indexes.MorphDefinition, error) {
	hits, ok := result["hits"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("search response has no hits")
	}

	allDocHits := []map[string]interface{}{}
	if err := mapstructure.Decode(hits["hits"], &allDocHits); err != nil {
		return nil, fmt.Errorf("decoding hits: %w", err)
	}

	morphs := make([]indexes.MorphDefinition, 0, len(allDocHits))
	for _, hit := range allDocHits {
		var morph indexes.MorphDefinition
		if err := mapstructure.Decode(hit["_source"], &morph); err != nil {
			return nil, fmt.Errorf("decoding morph %v: %w", hit["_id"], err)
		}
		morphs = append(morphs, morph)
	}
	return morphs, nil
}

// IndexMorph writes one catalog entry, keyed by its id.
func IndexMorph(ctx context.Context, cfg *models.Config, es *elasticsearch.Client, morph indexes.MorphDefinition) error {
	b, err := json.Marshal(morph)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      cfg.Elasticsearch.MorphIndex,
		DocumentID: morph.Id,
		Body:       strings.NewReader(string(b)),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, es)
	if err != nil {
		return fmt.Errorf("indexing morph %s: %w", morph.Id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("indexing morph %s: %s", morph.Id, res.Status())
	}
	return nil
}
