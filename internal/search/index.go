package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"

	"github.com/Skotchmaster/items_api/internal/models"
)

const indexMapping = `{
  "mappings": {
    "properties": {
      "id":          {"type": "long"},
      "user_id":     {"type": "long"},
      "name":        {"type": "text"},
      "description": {"type": "text"}
    }
  }
}`

type document struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ItemIndex keeps a searchable copy of items in Elasticsearch.
type ItemIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewItemIndex(es *elasticsearch.Client, index string) *ItemIndex {
	return &ItemIndex{ES: es, Index: index}
}

func responseError(op string, res *esapi.Response) error {
	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("elasticsearch: %s: %s: %s", op, res.Status(), bytes.TrimSpace(body))
}

func (x *ItemIndex) EnsureIndex(ctx context.Context) error {
	res, err := x.ES.Indices.Exists([]string{x.Index}, x.ES.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch: index exists: %w", err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = x.ES.Indices.Create(
		x.Index,
		x.ES.Indices.Create.WithContext(ctx),
		x.ES.Indices.Create.WithBody(bytes.NewReader([]byte(indexMapping))),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch: create index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError("create index", res)
	}
	return nil
}

func (x *ItemIndex) IndexItem(ctx context.Context, item models.Item) error {
	body, err := json.Marshal(document{
		ID:          item.ID,
		UserID:      item.UserID,
		Name:        item.Name,
		Description: item.Description,
	})
	if err != nil {
		return fmt.Errorf("elasticsearch: marshal item: %w", err)
	}

	res, err := x.ES.Index(
		x.Index,
		bytes.NewReader(body),
		x.ES.Index.WithContext(ctx),
		x.ES.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch: index item: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError("index item", res)
	}
	return nil
}

func (x *ItemIndex) DeleteItem(ctx context.Context, id uint) error {
	res, err := x.ES.Delete(
		x.Index,
		strconv.FormatUint(uint64(id), 10),
		x.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch: delete item: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return responseError("delete item", res)
	}
	return nil
}

// SearchItems returns the total hit count and the ids of the matching page, best match first.
func (x *ItemIndex) SearchItems(ctx context.Context, ownerID uint, q string, offset, limit int) (int64, []uint, error) {
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     q,
						"fields":    []string{"name^2", "description"},
						"fuzziness": "AUTO",
					},
				},
				"filter": []any{
					map[string]any{"term": map[string]any{"user_id": ownerID}},
				},
			},
		},
		"_source": []string{"id"},
		"from":    offset,
		"size":    limit,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: encode query: %w", err)
	}

	res, err := x.ES.Search(
		x.ES.Search.WithContext(ctx),
		x.ES.Search.WithIndex(x.Index),
		x.ES.Search.WithBody(&buf),
		x.ES.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, responseError("search", res)
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source document `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: decode search: %w", err)
	}

	ids := make([]uint, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return r.Hits.Total.Value, ids, nil
}
