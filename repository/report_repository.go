package repository

import "debt-health/domain"

type ReportRepository interface {
	Save(input domain.DebtHealthInput, report domain.DebtHealthReport) error
}
