package usecase

import (
	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
)

func toUserResponse(u *entity.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Role:              string(u.Role),
		Active:            u.Active,
		BypassAccessRules: u.BypassAccessRules,
		Deleted:           u.Deleted,
		ManagedBranchID:   u.ManagedBranchID,
		AccessRules:       make([]dto.AccessRuleResponse, 0, len(u.AccessRules)),
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
		DeletedAt:         u.DeletedAt,
	}
	if u.Profile != nil {
		resp.Profile = &dto.ProfileInfo{
			FirstName:       u.Profile.FirstName,
			LastName:        u.Profile.LastName,
			Email:           u.Profile.Email,
			Phone:           u.Profile.Phone,
			Address:         u.Profile.Address,
			EmployeeNumber:  u.Profile.EmployeeNumber,
			HireDate:        u.Profile.HireDate,
			TerminationDate: u.Profile.TerminationDate,
		}
	}
	if u.DriverDetail != nil {
		resp.DriverDetails = &dto.DriverInfo{
			LicenseNumber:         u.DriverDetail.LicenseNumber,
			LicenseExpirationDate: u.DriverDetail.LicenseExpirationDate,
		}
	}
	for _, rule := range u.AccessRules {
		resp.AccessRules = append(resp.AccessRules, toAccessRuleResponse(rule))
	}
	return resp
}

func toUserSummary(u *entity.User) dto.UserSummaryResponse {
	return dto.UserSummaryResponse{
		ID:       u.ID,
		FullName: u.Profile.FullName(),
		Username: u.Username,
		Role:     string(u.Role),
		Active:   u.Active,
		Deleted:  u.Deleted,
	}
}

func toAccessRuleResponse(r entity.AccessRule) dto.AccessRuleResponse {
	return dto.AccessRuleResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		DayOfWeek:      r.DayOfWeek,
		StartTime:      r.StartTime.String(),
		EndTime:        r.EndTime.String(),
		AccessTimezone: r.Timezone,
		Active:         r.Active,
	}
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:          b.ID,
		Name:        b.Name,
		Address:     b.Address,
		Phone:       b.Phone,
		OrderPrefix: b.OrderPrefix,
		Deleted:     b.Deleted,
	}
}

func toDriverResponse(d *entity.Driver) *dto.DriverResponse {
	return &dto.DriverResponse{
		ID:      d.ID,
		Name:    d.Name,
		Phone:   d.Phone,
		License: d.License,
		Active:  d.Active,
		Deleted: d.Deleted,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:      c.ID,
		Name:    c.Name,
		Deleted: c.Deleted,
	}
}
