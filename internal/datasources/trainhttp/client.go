package trainhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

var _ datasources.Trainer = (*Client)(nil)

// Client delegates model training to an external training service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new training service client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

type trainRequest struct {
	Params domain.Hyperparameters `json:"params"`
}

type trainResponse struct {
	BestK       int     `json:"best_k"`
	BIC         float64 `json:"bic"`
	Assignments []struct {
		ZoneID    string `json:"zone_id"`
		RiskLevel int    `json:"risk_level"`
	} `json:"assignments"`
}

func (c *Client) Train(
	ctx context.Context, params domain.Hyperparameters,
) (domain.TrainingResult, error) {
	jsonBody, err := json.Marshal(trainRequest{Params: params})
	if err != nil {
		return domain.TrainingResult{}, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/train",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return domain.TrainingResult{}, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.TrainingResult{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.TrainingResult{}, fmt.Errorf(
			"training service returned status %d: %s", resp.StatusCode, string(body))
	}

	var trainResp trainResponse
	if err := json.NewDecoder(resp.Body).Decode(&trainResp); err != nil {
		return domain.TrainingResult{}, fmt.Errorf("decoding response: %w", err)
	}

	if len(trainResp.Assignments) == 0 {
		return domain.TrainingResult{}, fmt.Errorf("training service returned no zone assignments")
	}

	result := domain.TrainingResult{
		BestK: trainResp.BestK,
		BIC:   trainResp.BIC,
	}
	for _, a := range trainResp.Assignments {
		result.Assignments = append(result.Assignments, domain.ZoneAssignment{
			ZoneID:    a.ZoneID,
			RiskLevel: a.RiskLevel,
		})
	}

	return result, nil
}
