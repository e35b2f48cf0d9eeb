package create_couples_booking

import (
	"fmt"

	"github.com/m04kA/SMC-SpaBooking/pkg/ptr"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	participants := []struct {
		name string
		Participant
	}{
		{"primary", req.Primary},
		{"secondary", req.Secondary},
	}

	for _, p := range participants {
		name := p.name
		if p.ServiceID <= 0 {
			return fmt.Errorf("%w: %s serviceID must be positive", ErrInvalidInput, name)
		}
		if p.StaffID <= 0 {
			return fmt.Errorf("%w: %s staffID must be positive", ErrInvalidInput, name)
		}
		if p.RoomID != nil && *p.RoomID <= 0 {
			return fmt.Errorf("%w: %s roomID must be positive", ErrInvalidInput, name)
		}
	}

	// Один мастер не обслуживает двоих одновременно, а парная комната у пары одна
	if req.Primary.StaffID == req.Secondary.StaffID {
		return fmt.Errorf("%w: participants must have different staff members", ErrInvalidInput)
	}
	if req.Primary.RoomID != nil && req.Secondary.RoomID != nil &&
		ptr.Value(req.Primary.RoomID) != ptr.Value(req.Secondary.RoomID) {
		return fmt.Errorf("%w: participants must share one couples room", ErrInvalidInput)
	}

	return nil
}
