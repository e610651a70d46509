package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"gitlab.connectwisedev.com/coffee-service/models"
)

// envelope is the upstream response shape. Data stays raw so that one
// odd element cannot fail the whole decode.
type envelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *[]json.RawMessage `json:"data"`
}

var errNoData = errors.New("catalog response has no data array")

// Loader fetches the product catalog from a fixed HTTP endpoint.
// It performs exactly one round trip per call and never retries.
type Loader struct {
	url        string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewLoader(url string, httpClient *http.Client, logger zerolog.Logger) *Loader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Loader{
		url:        url,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "catalog_loader").Logger(),
	}
}

// LoadCatalog returns the normalized catalog in source order. Failures are
// one of *TransportError, *APIError or *UnknownError.
func (l *Loader) LoadCatalog(ctx context.Context) ([]models.Product, error) {
	products, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error().Err(err).Str("url", l.url).Msg("failed to load catalog")
		return nil, err
	}
	l.logger.Debug().Int("count", len(products)).Msg("catalog loaded")
	return products, nil
}

// LoadProduct loads the catalog and picks the product with the given id.
func (l *Loader) LoadProduct(ctx context.Context, id string) (models.Product, error) {
	products, err := l.LoadCatalog(ctx)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

func (l *Loader) fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &UnknownError{Cause: err}
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, &UnknownError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	var env envelope
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return nil, &UnknownError{Cause: fmt.Errorf("decode catalog response: %w", err)}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = DefaultFailureMessage
		}
		return nil, &APIError{Message: msg}
	}
	if env.Data == nil {
		return nil, &UnknownError{Cause: errNoData}
	}

	raws := make([]RawProduct, 0, len(*env.Data))
	for i, elem := range *env.Data {
		raw, err := parseRaw(elem)
		if err != nil {
			return nil, &UnknownError{Cause: fmt.Errorf("catalog element %d: %w", i, err)}
		}
		raws = append(raws, raw)
	}
	return NormalizeAll(raws), nil
}
