package repository

import (
	"renobudget/internal/models"

	"gorm.io/gorm"
)

// Summary serves the read-only budget rollups. Every call recomputes from
// the base tables; nothing is cached.
type Summary struct {
	db *gorm.DB
}

func NewSummary(db *gorm.DB) *Summary {
	return &Summary{db: db}
}

type RoomSummary struct {
	RoomID         uint    `json:"room_id"`
	RoomName       string  `json:"room_name"`
	EstimatedTotal float64 `json:"estimated_total"`
	ActualTotal    float64 `json:"actual_total"`
	ItemCount      int     `json:"item_count"`
}

type CategorySummary struct {
	Category       string  `json:"category"`
	EstimatedTotal float64 `json:"estimated_total"`
	ActualTotal    float64 `json:"actual_total"`
	ItemCount      int     `json:"item_count"`
}

type TypeSummary struct {
	DetailType     models.DetailType `json:"detail_type"`
	EstimatedTotal float64           `json:"estimated_total"`
	ActualTotal    float64           `json:"actual_total"`
}

type ProjectSummary struct {
	ByRoom     []RoomSummary     `json:"byRoom"`
	ByCategory []CategorySummary `json:"byCategory"`
	ByType     []TypeSummary     `json:"byType"`
}

// ProjectSummary computes the three breakdowns for a project in one call.
func (r *Summary) ProjectSummary(projectID uint) (*ProjectSummary, error) {
	summary := &ProjectSummary{
		ByRoom:     []RoomSummary{},
		ByCategory: []CategorySummary{},
		ByType:     []TypeSummary{},
	}

	// rooms with zero items still appear, at zero
	err := r.db.Raw(`SELECT
			r.id AS room_id,
			r.name AS room_name,
			COALESCE(SUM(bi.estimated_cost), 0) AS estimated_total,
			COALESCE(SUM(bi.actual_cost), 0) AS actual_total,
			COUNT(bi.id) AS item_count
		FROM rooms r
		LEFT JOIN budget_items bi ON bi.room_id = r.id
		WHERE r.project_id = ?
		GROUP BY r.id, r.name
		ORDER BY r.display_order, r.id`, projectID).
		Scan(&summary.ByRoom).Error
	if err != nil {
		return nil, err
	}

	// uncategorized items collapse into one bucket; empty categories are
	// absent rather than zero
	err = r.db.Raw(`SELECT
			COALESCE(c.name, 'Uncategorized') AS category,
			COALESCE(SUM(bi.estimated_cost), 0) AS estimated_total,
			COALESCE(SUM(bi.actual_cost), 0) AS actual_total,
			COUNT(bi.id) AS item_count
		FROM budget_items bi
		LEFT JOIN categories c ON c.id = bi.category_id
		WHERE bi.project_id = ?
		GROUP BY c.id, c.name
		ORDER BY category`, projectID).
		Scan(&summary.ByCategory).Error
	if err != nil {
		return nil, err
	}

	// actual_total stays 0 here; real spend is tracked on budget_actuals
	// and is not rolled into this breakdown
	err = r.db.Raw(`SELECT
			d.detail_type AS detail_type,
			COALESCE(SUM(d.total_amount), 0) AS estimated_total,
			0 AS actual_total
		FROM budget_details d
		JOIN budget_items bi ON bi.id = d.budget_item_id
		WHERE bi.project_id = ?
		GROUP BY d.detail_type
		ORDER BY d.detail_type`, projectID).
		Scan(&summary.ByType).Error
	if err != nil {
		return nil, err
	}

	return summary, nil
}
