package handlers

import "github.com/m04kA/SMC-SpaBooking/internal/domain"

// IssueResponse ошибка или предупреждение проверки
type IssueResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConflictResponse пересекающееся бронирование
type ConflictResponse struct {
	ID              int64  `json:"id"`
	RoomID          int64  `json:"roomId"`
	StaffID         int64  `json:"staffId"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ValidationResultResponse HTTP модель результата проверки бронирования
type ValidationResultResponse struct {
	IsValid           bool               `json:"isValid"`
	Errors            []IssueResponse    `json:"errors"`
	Warnings          []IssueResponse    `json:"warnings"`
	Conflicts         []ConflictResponse `json:"conflicts"`
	RecommendedRoomID *int64             `json:"recommendedRoomId,omitempty"`
}

// FromValidationResult конвертирует результат проверки в HTTP модель
func FromValidationResult(result *domain.ValidationResult) *ValidationResultResponse {
	if result == nil {
		return nil
	}

	conflicts := make([]ConflictResponse, len(result.Conflicts))
	for i, r := range result.Conflicts {
		conflicts[i] = ConflictResponse{
			ID:              r.ID,
			RoomID:          r.RoomID,
			StaffID:         r.StaffID,
			StartTime:       r.StartTime.String(),
			DurationMinutes: r.DurationMinutes,
		}
	}

	return &ValidationResultResponse{
		IsValid:           result.IsValid,
		Errors:            issues(result.Errors),
		Warnings:          issues(result.Warnings),
		Conflicts:         conflicts,
		RecommendedRoomID: result.RecommendedRoomID,
	}
}

func issues(list []domain.Issue) []IssueResponse {
	out := make([]IssueResponse, len(list))
	for i, issue := range list {
		out[i] = IssueResponse{Code: string(issue.Code), Message: issue.Message}
	}
	return out
}
