package domain

// EnforceRequest is shared by the rbac service and the HTTP middleware so the
// two packages do not import each other.
type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CompanyID  string `json:"company_id" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// Resources guarded by casbin policies.
const (
	ResourceGOSI    = "gosi"
	ResourceNitaqat = "nitaqat"
	ResourceEOS     = "eos"
	ResourcePayroll = "payroll"
	ResourceSalary  = "salary"
)

// GuardedResources lists every resource a route checks; policy rows for
// anything else are not loaded.
var GuardedResources = []string{
	ResourceGOSI,
	ResourceNitaqat,
	ResourceEOS,
	ResourcePayroll,
	ResourceSalary,
}

const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionApprove = "approve"
	ActionProcess = "process"
)
