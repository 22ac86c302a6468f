package repository

import (
	"sync"

	"debt-health/domain"
)

// ReportRepositoryMemory is an in-memory implementation of ReportRepository.
type ReportRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.DebtHealthReport
}

// NewReportRepositoryMemory creates a new in-memory report repository.
func NewReportRepositoryMemory() *ReportRepositoryMemory {
	return &ReportRepositoryMemory{
		data: []domain.DebtHealthReport{},
	}
}

// Save stores the computed report in memory.
func (r *ReportRepositoryMemory) Save(
	input domain.DebtHealthInput,
	report domain.DebtHealthReport,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, report)
	return nil
}

// Count devuelve cuántos reportes se han guardado.
func (r *ReportRepositoryMemory) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
