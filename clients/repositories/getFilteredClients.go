package repositories

import (
	"visa-office-backend/db/models"

	"gorm.io/gorm"
)

// clientsQueryBuilder builds queries for client filtering
type clientsQueryBuilder struct {
	query   *gorm.DB
	filters map[string]string
}

func newClientsQueryBuilder(db *gorm.DB, filters map[string]string) *clientsQueryBuilder {
	return &clientsQueryBuilder{
		query:   db.Model(&models.Client{}),
		filters: filters,
	}
}

func (cqb *clientsQueryBuilder) applyBasicClientFilters() *clientsQueryBuilder {
	if status, ok := cqb.filters["status"]; ok && status != "" {
		cqb.query = cqb.query.Where("status = ?", status)
	}
	if visaType, ok := cqb.filters["visa_type"]; ok && visaType != "" {
		cqb.query = cqb.query.Where("visa_type = ?", visaType)
	}
	return cqb
}

// applySearchFilter matches the query string against name or phone.
func (cqb *clientsQueryBuilder) applySearchFilter() *clientsQueryBuilder {
	if search, ok := cqb.filters["search"]; ok && search != "" {
		pattern := "%" + search + "%"
		cqb.query = cqb.query.Where("name ILIKE ? OR phone ILIKE ?", pattern, pattern)
	}
	return cqb
}

func (cqb *clientsQueryBuilder) applyDateRangeFilter() *clientsQueryBuilder {
	startDate := cqb.filters["start_date"]
	endDate := cqb.filters["end_date"]

	if startDate != "" && startDate != "null" && endDate != "" && endDate != "null" {
		cqb.query = cqb.query.Where("DATE(created_at) BETWEEN DATE(?) AND DATE(?)", startDate, endDate)
	}
	return cqb
}

func (cqb *clientsQueryBuilder) applyLatestOrder() *clientsQueryBuilder {
	cqb.query = cqb.query.Order("created_at DESC")
	return cqb
}

func (cqb *clientsQueryBuilder) Limit(limit int) *clientsQueryBuilder {
	cqb.query = cqb.query.Limit(limit)
	return cqb
}

func (cqb *clientsQueryBuilder) Offset(offset int) *clientsQueryBuilder {
	cqb.query = cqb.query.Offset(offset)
	return cqb
}

// GetFilteredClients returns filtered clients with pagination
func (cr *clientRepository) GetFilteredClients(filters map[string]string, paginationEnabled bool, limit, offset int) ([]models.Client, int64, error) {
	cqb := newClientsQueryBuilder(cr.DB, filters).applySearchFilter().applyBasicClientFilters().applyDateRangeFilter().applyLatestOrder()
	cqb2 := newClientsQueryBuilder(cr.DB, filters).applySearchFilter().applyBasicClientFilters().applyDateRangeFilter()

	if paginationEnabled {
		cqb = cqb.Limit(limit).Offset(offset)
	}

	var clients []models.Client
	if err := cqb.query.Preload("Payments").Preload("Documents").Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := cqb2.query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}
