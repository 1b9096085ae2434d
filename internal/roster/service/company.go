package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
	"github.com/rosterhq/roster/internal/roster/store"
	"github.com/rosterhq/roster/pkg/idx"
	"github.com/rosterhq/roster/pkg/slogx"
)

var ErrCompanyNameRequired = errors.New("company name is required")

type CompanyService struct {
	Store store.Store
}

// CreateCompany creates a company with the creator as its first OWNER.
// The company row, the owner membership and (when the creator has no
// active company yet) the active-company pointer commit in one
// transaction; a company never exists ownerless.
func (s *CompanyService) CreateCompany(ctx context.Context, name, logoURL, creatorID string) (domain.Company, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate inputs.
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Company{}, ErrCompanyNameRequired
	}

	// 2. The creator must exist.
	creator, err := s.Store.Users().GetUserByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Company{}, ErrUserNotFound
		}
		log.Error("failed to fetch creator", slog.Any("error", err))
		return domain.Company{}, err
	}

	// 3. Create company + owner membership atomically.
	now := time.Now().UTC()
	company := domain.Company{
		ID:        idx.New().String(),
		Name:      name,
		LogoURL:   strings.TrimSpace(logoURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	membership := domain.Membership{
		ID:        idx.New().String(),
		UserID:    creatorID,
		CompanyID: company.ID,
		Role:      domain.RoleOwner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Companies().CreateCompany(ctx, company); err != nil {
			return err
		}
		if err := tx.Memberships().CreateMembership(ctx, membership); err != nil {
			return err
		}
		if creator.ActiveCompanyID == "" {
			return tx.Users().UpdateActiveCompany(ctx, creatorID, company.ID)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create company", slog.Any("error", err))
		return domain.Company{}, err
	}

	log.Info("company created",
		slog.String("company_id", company.ID),
		slog.String("owner_id", creatorID),
	)

	return company, nil
}

// GetCompany returns a company the requester belongs to. Outsiders get
// ErrNotCompanyMember even when the company exists.
func (s *CompanyService) GetCompany(ctx context.Context, companyID, requesterID string) (domain.Company, error) {
	company, err := s.Store.Companies().GetCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Company{}, ErrCompanyNotFound
		}
		return domain.Company{}, err
	}

	if _, err := s.Store.Memberships().GetMembershipByUserAndCompany(ctx, requesterID, companyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Company{}, ErrNotCompanyMember
		}
		return domain.Company{}, err
	}

	return company, nil
}

// ListUserCompanies returns a page of the companies the user belongs
// to, each annotated with the user's role, newest membership first.
func (s *CompanyService) ListUserCompanies(
	ctx context.Context,
	userID string,
	page, pageSize int,
) ([]domain.CompanyWithRole, domain.PageInfo, error) {
	pg := domain.NewPageInfo(page, pageSize, 0)

	total, err := s.Store.Companies().CountCompaniesByUser(ctx, userID)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	pg = domain.NewPageInfo(pg.Page, pg.PageSize, total)

	companies, err := s.Store.Companies().ListCompaniesByUser(ctx, userID, pg.PageSize, pg.Offset())
	if err != nil {
		return nil, domain.PageInfo{}, err
	}

	return companies, pg, nil
}

// SelectActiveCompany points the user's tenant context at a company
// they are a member of and returns the updated user.
func (s *CompanyService) SelectActiveCompany(ctx context.Context, userID, companyID string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Company must exist.
	if _, err := s.Store.Companies().GetCompanyByID(ctx, companyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrCompanyNotFound
		}
		log.Error("failed to fetch company", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. The user must belong to it.
	if _, err := s.Store.Memberships().GetMembershipByUserAndCompany(ctx, userID, companyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotCompanyMember
		}
		log.Error("failed to fetch membership", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Move the pointer and reload.
	if err := s.Store.Users().UpdateActiveCompany(ctx, userID, companyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		log.Error("failed to update active company", slog.Any("error", err))
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	log.Info("active company selected",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
	)

	return user, nil
}
