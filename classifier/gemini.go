//go:generate go run go.uber.org/mock/mockgen -source=gemini.go -destination=../mocks/mock_classifier.go -package=mocks

// Package classifier calls an external LLM to decide whether a message
// is positive. The model is instructed to answer in strict JSON; the
// response is validated before use and anything malformed is a failure,
// never a silent acceptance.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"kindwall/domain"
	"kindwall/errors"
)

const systemInstruction = `### Purpose and Goals ###

Classify input messages into positive and non-positive categories.

A positive message must:

* Be uplifting, encouraging, or caring in tone.

* Be directed toward the reader or another person (i.e., it must express kindness, appreciation, praise, compassion, motivation, etc., toward others).

* Contain only positive and unambiguous language.

* Make the reader feel better, appreciated, or emotionally supported.

* Messages that merely express personal preferences, opinions, excitement, or observations (e.g., "I love sushi", "It's sunny today") must NOT be classified as positive unless they are clearly intended to uplift or support another person.

* Messages may be in any language, but responses must always be in English.

### Behaviors and Rules ###

1. Classification Logic

a) Classify a message as positive only if it satisfies all the following:

* Clearly directed toward another person (or the reader).

* Unambiguously supportive, caring, kind, or motivating.

* Contains no neutral, vulgar, or ambiguous content.

b) If a message:

* Is neutral (e.g., factual or self-centered without uplifting intent),

* Is ambiguous in tone,

* Contains any vulgarity or mixed/negative sentiment,

* Or is not clearly directed at another person,

-> then classify it as non-positive.

c) When in doubt, default to non-positive.

### Response Format ###

a) Respond in strict JSON format.
b) The JSON object must have:
{

"isPositive": true or false,

"reason": "..." // Only if isPositive is false
}

### Overall Tone and Principle ###

* Be strict and conservative in classification.

* It's better to misclassify a positive message as non-positive than to classify a neutral or ambiguous message as positive.

* Apply logic objectively without making assumptions about intention beyond what is stated.`

// jsonObject extracts the first JSON object from the model output,
// which may be wrapped in markdown fences.
var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

type IClassifier interface {
	Classify(ctx context.Context, text string) (domain.Verdict, error)
}

// GeminiClassifier talks to the Gemini generateContent API.
type GeminiClassifier struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClassifier(apiKey, model, baseURL string, timeout time.Duration) *GeminiClassifier {
	return &GeminiClassifier{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Classify submits the message for classification. A timeout, a non-200
// status, an empty candidate list or an answer without a parseable JSON
// object are all failures: the caller must not spend quota on them.
func (c *GeminiClassifier) Classify(ctx context.Context, text string) (domain.Verdict, error) {
	if c.apiKey == "" {
		return domain.Verdict{}, fmt.Errorf("%w: api key not configured", errors.ErrClassifier)
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: fmt.Sprintf("%q", text)}}}},
	})
	if err != nil {
		return domain.Verdict{}, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return domain.Verdict{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", errors.ErrClassifier, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", errors.ErrClassifier, err)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Verdict{}, fmt.Errorf("%w: status %d: %s", errors.ErrClassifier, resp.StatusCode, string(raw))
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", errors.ErrMalformedVerdict, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return domain.Verdict{}, fmt.Errorf("%w: no candidates", errors.ErrMalformedVerdict)
	}

	return parseVerdict(parsed.Candidates[0].Content.Parts[0].Text)
}

func parseVerdict(generated string) (domain.Verdict, error) {
	match := jsonObject.FindString(generated)
	if match == "" {
		return domain.Verdict{}, fmt.Errorf("%w: no JSON object in %q", errors.ErrMalformedVerdict, generated)
	}

	var verdict domain.Verdict
	if err := json.Unmarshal([]byte(match), &verdict); err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", errors.ErrMalformedVerdict, err)
	}
	return verdict, nil
}
