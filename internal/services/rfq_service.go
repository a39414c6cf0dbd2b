package services

import (
	"fmt"

	"backend/internal/repositories"
	"backend/internal/utils"
)

// RFQService owns RFQ mutations.
type RFQService struct {
	RFQRepo   repositories.RFQRepository
	RequestID string
}

// Delete removes an RFQ together with its audit trail entry. The repository
// runs both inside one transaction; a missing or concurrently deleted row
// comes back as domain.NotFoundError.
func (s RFQService) Delete(id int64) error {
	if err := s.RFQRepo.DeleteWithAudit(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "rfq", "delete", fmt.Sprintf("rfq_id=%d", id))
	return nil
}
