package nitaqat

import "github.com/shopspring/decimal"

type CalculateRequest struct {
	Sector          string `json:"sector" binding:"omitempty,max=100"`
	CalculationDate string `json:"calculation_date" binding:"omitempty,datetime=2006-01-02"`
}

type SnapshotResponse struct {
	ID                    string           `json:"id"`
	CompanyID             string           `json:"company_id"`
	CalculationDate       string           `json:"calculation_date"`
	Sector                string           `json:"sector,omitempty"`
	TotalEmployees        int              `json:"total_employees"`
	SaudiEmployees        int              `json:"saudi_employees"`
	EffectiveSaudiCount   decimal.Decimal  `json:"effective_saudi_count"`
	SaudizationPercentage decimal.Decimal  `json:"saudization_percentage"`
	Zone                  string           `json:"zone"`
	EntitySize            string           `json:"entity_size"`
	NextZone              *string          `json:"next_zone,omitempty"`
	EmployeesNeeded       *decimal.Decimal `json:"employees_needed_for_next_zone,omitempty"`
	RequiresSaudiEmployee bool             `json:"requires_saudi_employee,omitempty"`
	CreatedAt             string           `json:"created_at"`
}

func mapToResponse(s Snapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:                    s.ID.String(),
		CompanyID:             s.CompanyID.String(),
		CalculationDate:       s.CalculationDate.Format("2006-01-02"),
		Sector:                s.Sector,
		TotalEmployees:        s.TotalEmployees,
		SaudiEmployees:        s.SaudiEmployees,
		EffectiveSaudiCount:   s.EffectiveSaudiCount,
		SaudizationPercentage: s.SaudizationPercentage,
		Zone:                  s.Zone,
		EntitySize:            s.EntitySize,
		NextZone:              s.NextZone,
		EmployeesNeeded:       s.EmployeesNeeded,
		RequiresSaudiEmployee: s.Zone == string(ZoneExempt) && s.SaudiEmployees == 0,
		CreatedAt:             s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func mapToListResponse(snapshots []Snapshot) []SnapshotResponse {
	resp := make([]SnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		resp = append(resp, mapToResponse(s))
	}
	return resp
}
