// services/translate_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// TranslateService pre-fills English fields from the base language. It is
// best-effort: a primary keyless provider is tried first, then a fallback;
// when both fail the caller gets an error result and the field stays manual.
type TranslateService struct {
	PrimaryURL  string // MyMemory-compatible: {url}?q=...&langpair=tr|en
	FallbackURL string // Lingva-compatible: {url}/tr/en/{text}
	BatchDelay  time.Duration

	client *http.Client
	log    *zap.Logger
}

func NewTranslateService(primaryURL, fallbackURL string, batchDelay time.Duration, log *zap.Logger) *TranslateService {
	return &TranslateService{
		PrimaryURL:  primaryURL,
		FallbackURL: fallbackURL,
		BatchDelay:  batchDelay,
		client:      &http.Client{Timeout: 10 * time.Second},
		log:         log,
	}
}

type BatchItem struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type BatchResult struct {
	ID             uint   `json:"id"`
	TranslatedText string `json:"translatedText,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Translate returns the English rendering of text, trying the fallback
// provider on any primary failure. The caller never observes which provider
// answered.
func (s *TranslateService) Translate(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	out, err := s.translatePrimary(text)
	if err == nil {
		return out, nil
	}
	s.log.Warn("primary translation provider failed, using fallback", zap.Error(err))

	out, err = s.translateFallback(text)
	if err != nil {
		s.log.Warn("fallback translation provider failed", zap.Error(err))
		return "", errors.New("translation unavailable")
	}
	return out, nil
}

// TranslateBatch serializes single-item calls with a fixed delay between them
// to stay under provider rate limits. Individual failures do not abort the
// batch.
func (s *TranslateService) TranslateBatch(items []BatchItem) []BatchResult {
	results := make([]BatchResult, 0, len(items))
	for i, item := range items {
		if i > 0 {
			time.Sleep(s.BatchDelay)
		}
		out, err := s.Translate(item.Text)
		if err != nil {
			results = append(results, BatchResult{ID: item.ID, Error: err.Error()})
			continue
		}
		results = append(results, BatchResult{ID: item.ID, TranslatedText: out})
	}
	return results
}

func (s *TranslateService) translatePrimary(text string) (string, error) {
	endpoint := fmt.Sprintf("%s?q=%s&langpair=tr|en", s.PrimaryURL, url.QueryEscape(text))
	res, err := s.client.Get(endpoint)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("primary provider status %d", res.StatusCode)
	}

	var payload struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus int `json:"responseStatus"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.ResponseStatus != 0 && payload.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("primary provider response status %d", payload.ResponseStatus)
	}
	if payload.ResponseData.TranslatedText == "" {
		return "", errors.New("primary provider returned empty translation")
	}
	return payload.ResponseData.TranslatedText, nil
}

func (s *TranslateService) translateFallback(text string) (string, error) {
	endpoint := fmt.Sprintf("%s/tr/en/%s", s.FallbackURL, url.PathEscape(text))
	res, err := s.client.Get(endpoint)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fallback provider status %d", res.StatusCode)
	}

	var payload struct {
		Translation string `json:"translation"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.Translation == "" {
		return "", errors.New("fallback provider returned empty translation")
	}
	return payload.Translation, nil
}
