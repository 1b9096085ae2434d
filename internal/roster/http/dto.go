package http

import (
	"github.com/rosterhq/roster/internal/roster/domain"
	"github.com/rosterhq/roster/pkg/rosterapi"
)

// Conversions from domain types to wire DTOs. Timestamps go out as
// unix seconds.

func toUser(u domain.User) rosterapi.User {
	return rosterapi.User{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		ActiveCompanyID: u.ActiveCompanyID,
	}
}

func toCompany(c domain.Company) rosterapi.Company {
	return rosterapi.Company{
		ID:        c.ID,
		Name:      c.Name,
		LogoURL:   c.LogoURL,
		CreatedAt: c.CreatedAt.Unix(),
	}
}

func toCompanySummary(c domain.CompanySummary) rosterapi.Company {
	return rosterapi.Company{
		ID:      c.ID,
		Name:    c.Name,
		LogoURL: c.LogoURL,
	}
}

func toMembership(m domain.Membership) rosterapi.Membership {
	return rosterapi.Membership{
		ID:        m.ID,
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt.Unix(),
	}
}

func toMember(m domain.Member) rosterapi.Member {
	return rosterapi.Member{
		Membership: toMembership(m.Membership),
		User: rosterapi.User{
			ID:    m.User.ID,
			Email: m.User.Email,
			Name:  m.User.Name,
		},
	}
}

func toProfile(p domain.Profile) rosterapi.Profile {
	memberships := make([]rosterapi.ProfileMembership, 0, len(p.Memberships))
	for _, m := range p.Memberships {
		memberships = append(memberships, rosterapi.ProfileMembership{
			Membership: toMembership(m.Membership),
			Company:    toCompanySummary(m.Company),
		})
	}
	return rosterapi.Profile{
		User:        toUser(p.User),
		Memberships: memberships,
	}
}

func toInvite(i domain.Invite) rosterapi.Invite {
	return rosterapi.Invite{
		Token:     i.Token,
		Email:     i.Email,
		CompanyID: i.CompanyID,
		Role:      string(i.Role),
		Used:      i.Used,
		ExpiresAt: i.ExpiresAt.Unix(),
		CreatedAt: i.CreatedAt.Unix(),
	}
}

func toPageInfo(p domain.PageInfo) rosterapi.PageInfo {
	return rosterapi.PageInfo{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
