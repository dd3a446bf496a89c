package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"leopa/api/models"

	"github.com/elastic/go-elasticsearch/v7"
)

// morphIndexMapping keeps ids and inheritance types as exact keywords and
// leaves names searchable.
var morphIndexMapping = map[string]interface{}{
	"mappings": map[string]interface{}{
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":   "text",
				"fields": map[string]interface{}{"keyword": map[string]interface{}{"type": "keyword"}},
			},
			"name":          map[string]interface{}{"type": "text"},
			"japaneseName":  map[string]interface{}{"type": "text"},
			"type":          map[string]interface{}{"type": "keyword"},
			"superForm":     map[string]interface{}{"type": "text"},
			"albinoGroup":   map[string]interface{}{"type": "keyword"},
			"healthWarning": map[string]interface{}{"type": "text"},
			"description":   map[string]interface{}{"type": "text"},
		},
	},
}

// EnsureMorphIndex creates the morph index if it does not exist yet and
// reports whether it did so.
func EnsureMorphIndex(ctx context.Context, cfg *models.Config, es *elasticsearch.Client) (bool, error) {
	index := cfg.Elasticsearch.MorphIndex

	res, err := es.Indices.Exists([]string{index}, es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("checking index %s: %w", index, err)
	}
	res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return false, nil
	case http.StatusNotFound:
	default:
		return false, fmt.Errorf("checking index %s: %s", index, res.Status())
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(morphIndexMapping); err != nil {
		return false, fmt.Errorf("encoding index mapping: %w", err)
	}

	res, err = es.Indices.Create(index,
		es.Indices.Create.WithContext(ctx),
		es.Indices.Create.WithBody(&buf),
	)
	if err != nil {
		return false, fmt.Errorf("creating index %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return false, fmt.Errorf("creating index %s: %s", index, res.Status())
	}

	fmt.Printf("[%s] - Created index %s\n", time.Now(), index)
	return true, nil
}
