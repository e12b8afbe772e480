package tips

import (
	"healthsync/internal/domain/tips"
)

type tipsInput struct {
	Body tipsRequest
}

type tipsRequest struct {
	Location string `json:"location" minLength:"1" doc:"Destination to get tips for"`
	Age      int    `json:"age" minimum:"0" doc:"Traveler's age"`
}

type tipsOutput struct {
	Body tipsResponse
}

type tipsResponse struct {
	Data  *tips.TipsResult `json:"data"`
	Error string           `json:"error,omitempty"`
}

type analysisInput struct {
	Body analysisRequest
}

type analysisRequest struct {
	FamilyHistory string `json:"familyHistory" minLength:"50" doc:"Free-text family history"`
}

type analysisOutput struct {
	Body analysisResponse
}

type analysisResponse struct {
	Data  *tips.AnalysisResult `json:"data"`
	Error string               `json:"error,omitempty"`
}

type chatInput struct {
	Body chatRequest
}

type chatRequest struct {
	History  string `json:"history" doc:"Family history context"`
	Question string `json:"question" minLength:"1" doc:"Question about the history"`
}

type chatOutput struct {
	Body chatResponse
}

type chatResponse struct {
	Data  *string `json:"data"`
	Error string  `json:"error,omitempty"`
}
