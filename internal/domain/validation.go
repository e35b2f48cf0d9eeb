package domain

import "fmt"

// IssueCode машинно-читаемый код ошибки или предупреждения проверки
type IssueCode string

const (
	IssueInvalidInput     IssueCode = "invalid_input"
	IssueBusinessHours    IssueCode = "business_hours"
	IssueInactiveResource IssueCode = "inactive_resource"
	IssueStaffCapability  IssueCode = "staff_capability"
	IssueStaffSchedule    IssueCode = "staff_schedule"
	IssueStaffShift       IssueCode = "staff_shift"
	IssueRoomCapability   IssueCode = "room_capability"
	IssueRoomConflict     IssueCode = "room_conflict"
	IssueStaffConflict    IssueCode = "staff_conflict"

	// Предупреждения (не блокируют бронирование)
	IssueSuboptimalRoom IssueCode = "suboptimal_room"
	IssueMinNotice      IssueCode = "min_notice"
)

// Issue одна ошибка (блокирующая) или одно предупреждение
type Issue struct {
	Code    IssueCode
	Message string
}

// ValidationResult вердикт проверки бронирования
// Создается заново на каждый вызов
type ValidationResult struct {
	IsValid   bool
	Errors    []Issue
	Warnings  []Issue
	Conflicts []*Reservation

	// RecommendedRoomID комната, которую выбрал бы распределитель (nil - не найдена)
	RecommendedRoomID *int64
}

// NewValidationResult создает успешный результат без замечаний
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid:   true,
		Errors:    []Issue{},
		Warnings:  []Issue{},
		Conflicts: []*Reservation{},
	}
}

// AddError добавляет блокирующую ошибку
func (r *ValidationResult) AddError(code IssueCode, format string, args ...interface{}) {
	r.IsValid = false
	r.Errors = append(r.Errors, Issue{Code: code, Message: fmt.Sprintf(format, args...)})
}

// AddWarning добавляет предупреждение
func (r *ValidationResult) AddWarning(code IssueCode, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, Issue{Code: code, Message: fmt.Sprintf(format, args...)})
}

// AddConflict запоминает пересекающееся бронирование
func (r *ValidationResult) AddConflict(res *Reservation) {
	for _, existing := range r.Conflicts {
		if existing.ID == res.ID {
			return
		}
	}
	r.Conflicts = append(r.Conflicts, res)
}

// HasError есть ошибка с данным кодом
func (r *ValidationResult) HasError(code IssueCode) bool {
	for _, issue := range r.Errors {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// HasWarning есть предупреждение с данным кодом
func (r *ValidationResult) HasWarning(code IssueCode) bool {
	for _, issue := range r.Warnings {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// ErrorMessages возвращает тексты ошибок в порядке добавления
func (r *ValidationResult) ErrorMessages() []string {
	return issueMessages(r.Errors)
}

// WarningMessages возвращает тексты предупреждений в порядке добавления
func (r *ValidationResult) WarningMessages() []string {
	return issueMessages(r.Warnings)
}

func issueMessages(issues []Issue) []string {
	messages := make([]string, len(issues))
	for i, issue := range issues {
		messages[i] = issue.Message
	}
	return messages
}
