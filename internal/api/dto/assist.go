package dto

type AssistIdeasDTO struct {
	Topic string `json:"topic" binding:"required"`
}

type AssistSummaryDTO struct {
	Content string `json:"content" binding:"required"`
}

type AssistImproveDTO struct {
	Text string `json:"text" binding:"required"`
}

type AssistResult struct {
	Text string `json:"text"`
}
