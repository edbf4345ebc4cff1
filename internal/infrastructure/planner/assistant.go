package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/domain/planning"
	"smarthaus/internal/usecase/interfaces"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"
	requestTimeout  = 45 * time.Second
)

var ErrNoPlanInResponse = errors.New("assistant response contained no plan")

// AssistantPlanSource calls the hosted planning assistant over HTTPS with an
// API-key query parameter and a single-turn prompt. Strictly best-effort:
// callers fall back to the deterministic planner on any error.
type AssistantPlanSource struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

var _ interfaces.IPlanSource = (*AssistantPlanSource)(nil)

func NewAssistantPlanSource(apiKey, endpoint string) *AssistantPlanSource {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &AssistantPlanSource{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

type assistantRequest struct {
	Contents []assistantContent `json:"contents"`
}

type assistantContent struct {
	Parts []assistantPart `json:"parts"`
}

type assistantPart struct {
	Text string `json:"text"`
}

type assistantResponse struct {
	Candidates []struct {
		Content struct {
			Parts []assistantPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// planPayload is the JSON contract the assistant is prompted to return.
type planPayload struct {
	Milestones []struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Percentage  float64 `json:"percentage"`
		Items       []struct {
			QuoteItemID string `json:"quoteItemId"`
			Quantity    int    `json:"quantity"`
		} `json:"items"`
	} `json:"milestones"`
}

func (s *AssistantPlanSource) GeneratePlan(ctx context.Context, req interfaces.PlanRequest) ([]planning.DraftMilestone, error) {
	if s.apiKey == "" {
		return nil, errors.New("planner api key not configured")
	}

	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(assistantRequest{
		Contents: []assistantContent{{Parts: []assistantPart{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"?key="+s.apiKey, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assistant error (%d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp assistantResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoPlanInResponse
	}

	draft, err := parsePlan(apiResp.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return nil, err
	}
	log.Printf("[planner][assistant] plan received milestones=%d", len(draft))
	return draft, nil
}

func buildPrompt(req interfaces.PlanRequest) (string, error) {
	quote := map[string]any{
		"id":    req.Quote.ID,
		"total": req.Quote.Total,
	}
	items := make([]map[string]any, 0, len(req.Quote.Items))
	for _, it := range req.Quote.Items {
		items = append(items, map[string]any{
			"id":         it.ID,
			"name":       it.Name,
			"category":   it.Category,
			"quantity":   it.Quantity,
			"totalPrice": it.TotalPrice,
		})
	}
	quote["items"] = items

	ctxObj := map[string]any{
		"roomCount":    req.Project.RoomCount,
		"buildingType": req.Project.BuildingType,
	}
	if ob := req.Onboarding; ob != nil {
		ctxObj["constructionStage"] = ob.ConstructionStage
		ctxObj["inspectionRequested"] = ob.InspectionRequested
		ctxObj["selectedFeatures"] = []string(ob.SelectedFeatures)
		ctxObj["stairStepCount"] = ob.StairStepCount
	}

	input, err := json.Marshal(map[string]any{
		"planType": req.PlanType,
		"project":  ctxObj,
		"quote":    quote,
	})
	if err != nil {
		return "", fmt.Errorf("marshal prompt input: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a payment milestone planner for smart-home installations.\n")
	b.WriteString("Given the project and quote below, split the work into exactly 3 payment milestones.\n")
	b.WriteString("Respond with a single JSON object, no prose, of the shape:\n")
	b.WriteString(`{"milestones":[{"title":"...","description":"...","percentage":40,"items":[{"quoteItemId":"...","quantity":1}]}]}`)
	b.WriteString("\nRules: percentages must sum to 100; every quoteItemId must come from the quote items; ")
	b.WriteString("a plan type of EIGHTY_TEN_TEN must use percentages 80, 10, 10 in order.\n\nInput:\n")
	b.Write(input)
	return b.String(), nil
}

// parsePlan extracts the milestone JSON from the assistant's reply. The model
// may wrap the object in prose or fences, so the text is sliced between the
// first '{' and the last '}' before unmarshalling.
func parsePlan(text string) ([]planning.DraftMilestone, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrNoPlanInResponse)
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("parse plan JSON: %w", err)
	}

	draft := make([]planning.DraftMilestone, 0, len(payload.Milestones))
	for _, m := range payload.Milestones {
		refs := make([]entities.MilestoneItemRef, 0, len(m.Items))
		for _, it := range m.Items {
			refs = append(refs, entities.MilestoneItemRef{QuoteItemID: it.QuoteItemID, Quantity: it.Quantity})
		}
		draft = append(draft, planning.DraftMilestone{
			Title:       m.Title,
			Description: m.Description,
			Percentage:  m.Percentage,
			Items:       refs,
		})
	}
	return draft, nil
}
