package rbac

import (
	"ksa-hris/internal/domain"
	"ksa-hris/internal/tenant"

	"gorm.io/gorm"
)

// Repository reads the role graph one company at a time; the service
// rebuilds the casbin policy from it on every check.
type Repository interface {
	GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error)
	GetRolePermissions(companyID string) ([]RolePermissionRow, error)
}

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error) {
	var rows []EmployeeRoleRow
	err := r.db.
		Table("employee_roles").
		Select("employee_roles.employee_id, employee_roles.role_id").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Scopes(tenant.TableScope("roles", companyID)).
		Scan(&rows).Error
	return rows, err
}

// GetRolePermissions skips permissions on resources no route guards.
func (r *repository) GetRolePermissions(companyID string) ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	err := r.db.
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Scopes(tenant.TableScope("roles", companyID), guardedResources).
		Scan(&rows).Error
	return rows, err
}

func guardedResources(db *gorm.DB) *gorm.DB {
	return db.Where("permissions.resource IN ?", domain.GuardedResources)
}
