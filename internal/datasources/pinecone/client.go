package pinecone

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarityRepository = (*Client)(nil)

// Client finds zones with similar crime profiles via a Pinecone index.
// Each zone is stored as one vector whose ID is the zone ID.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for zones: %w", err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) ListSimilarZones(
	ctx context.Context,
	excludeZoneID string,
	vector []float32,
	count int,
) ([]domain.SimilarZone, error) {
	if count > 10000 {
		return nil, fmt.Errorf("count value too high [%d]", count)
	}
	if len(vector) == 0 {
		return nil, nil
	}

	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host: c.index.Host,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	defer func() {
		_ = idxConn.Close()
	}()

	filter, err := exclusionFilter(excludeZoneID)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // count bounds checked above
	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:         vector,
		TopK:           uint32(count),
		MetadataFilter: filter,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar zone vectors: %w", err)
	}

	var results []domain.SimilarZone
	for _, scoredVector := range resp.Matches {
		if scoredVector.Vector.Id == excludeZoneID {
			continue
		}
		results = append(results, domain.SimilarZone{
			ZoneID: scoredVector.Vector.Id,
			Score:  float64(scoredVector.Score),
		})
	}

	return results, nil
}

func exclusionFilter(excludeZoneID string) (*pinecone.MetadataFilter, error) {
	if excludeZoneID == "" {
		return nil, nil
	}

	filter, err := structpb.NewStruct(map[string]any{
		"zone_id": map[string]any{
			"$ne": excludeZoneID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter: %w", err)
	}
	return filter, nil
}
