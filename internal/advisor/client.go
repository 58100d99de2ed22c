package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the advisor service over HTTP. The advisor owns all
// prediction and scoring behavior; this client only ferries JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (client *Client) PredictDisease(ctx context.Context, request DiseaseRequest) (DiseaseResult, error) {
	var result DiseaseResult
	if err := client.post(ctx, "/predict-disease", request, &result); err != nil {
		return DiseaseResult{}, err
	}
	return result, nil
}

func (client *Client) AssessMentalHealth(ctx context.Context, request AssessmentRequest) (AssessmentResult, error) {
	var result AssessmentResult
	if err := client.post(ctx, "/assess-mental-health", request, &result); err != nil {
		return AssessmentResult{}, err
	}
	return result, nil
}

func (client *Client) AnalyzeSentiment(ctx context.Context, request SentimentRequest) (SentimentResult, error) {
	var result SentimentResult
	if err := client.post(ctx, "/analyze-sentiment", request, &result); err != nil {
		return SentimentResult{}, err
	}
	return result, nil
}

func (client *Client) RecommendFitness(ctx context.Context, request FitnessRequest) (FitnessResult, error) {
	var result FitnessResult
	if err := client.post(ctx, "/fitness-recommendations", request, &result); err != nil {
		return FitnessResult{}, err
	}
	return result, nil
}

func (client *Client) CombineHealth(ctx context.Context, request CombinedRequest) (CombinedResult, error) {
	var result CombinedResult
	if err := client.post(ctx, "/combined-health", request, &result); err != nil {
		return CombinedResult{}, err
	}
	return result, nil
}

func (client *Client) post(ctx context.Context, path string, payload any, out any) error {
	if client.baseURL == "" {
		return ErrUnavailable
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode advisor request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build advisor request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("call advisor %s: %w", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("advisor %s returned status %d: %s", path, response.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decode advisor %s response: %w", path, err)
	}
	return nil
}
