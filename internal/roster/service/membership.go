package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rosterhq/roster/internal/roster/domain"
	"github.com/rosterhq/roster/internal/roster/store"
	"github.com/rosterhq/roster/pkg/slogx"
)

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrNotCompanyMember   = errors.New("requester is not a member of the company")
	ErrInsufficientRole   = errors.New("requester role does not permit this action")
	ErrSelfAction         = errors.New("cannot change or remove own membership")
	ErrLastOwner          = errors.New("company must retain at least one owner")
	ErrInvalidRole        = errors.New("invalid role")
)

type MembershipService struct {
	Store store.Store
}

// UpdateMemberRole changes the role of another member. The requester
// must belong to the same company and the role hierarchy must allow the
// transition. Demoting a company's sole remaining OWNER is refused:
// the owner-count check and the update run in one transaction so two
// concurrent demotions cannot both slip past the count.
func (s *MembershipService) UpdateMemberRole(
	ctx context.Context,
	membershipID string,
	newRole domain.Role,
	requesterID string,
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the requested role.
	if !newRole.Valid() {
		return domain.Membership{}, ErrInvalidRole
	}

	// 2. Load the target membership.
	membership, err := s.Store.Memberships().GetMembershipByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrMembershipNotFound
		}
		log.Error("failed to fetch membership", slog.Any("error", err))
		return domain.Membership{}, err
	}

	// 3. Nobody edits their own standing; a second party must do it.
	if membership.UserID == requesterID {
		return domain.Membership{}, ErrSelfAction
	}

	// 4. Resolve the requester's role in the same company.
	requester, err := s.Store.Memberships().GetMembershipByUserAndCompany(ctx, requesterID, membership.CompanyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrNotCompanyMember
		}
		log.Error("failed to fetch requester membership", slog.Any("error", err))
		return domain.Membership{}, err
	}

	// 5. Consult the role hierarchy.
	if !domain.CanChangeRole(requester.Role, membership.Role, newRole) {
		log.Warn("role change denied by hierarchy",
			slog.String("membership_id", membershipID),
			slog.String("requester_role", string(requester.Role)),
			slog.String("current_role", string(membership.Role)),
			slog.String("new_role", string(newRole)),
		)
		return domain.Membership{}, ErrInsufficientRole
	}

	// 6. Apply, guarding the last owner when this demotes one.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if membership.Role == domain.RoleOwner && newRole != domain.RoleOwner {
			owners, err := tx.Memberships().CountOwners(ctx, membership.CompanyID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}
		return tx.Memberships().UpdateMembershipRole(ctx, membershipID, newRole)
	})
	if err != nil {
		return domain.Membership{}, err
	}

	membership.Role = newRole

	log.Info("member role updated",
		slog.String("membership_id", membershipID),
		slog.String("company_id", membership.CompanyID),
		slog.String("new_role", string(newRole)),
		slog.String("requester_id", requesterID),
	)

	return membership, nil
}

// RemoveMember deletes another member's membership, subject to the same
// hierarchy checks and the last-owner invariant.
func (s *MembershipService) RemoveMember(
	ctx context.Context,
	membershipID string,
	requesterID string,
) error {
	log := slogx.FromContext(ctx)

	// 1. Load the target membership.
	membership, err := s.Store.Memberships().GetMembershipByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMembershipNotFound
		}
		log.Error("failed to fetch membership", slog.Any("error", err))
		return err
	}

	// 2. Self-removal is always denied.
	if membership.UserID == requesterID {
		return ErrSelfAction
	}

	// 3. Resolve the requester's role.
	requester, err := s.Store.Memberships().GetMembershipByUserAndCompany(ctx, requesterID, membership.CompanyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotCompanyMember
		}
		log.Error("failed to fetch requester membership", slog.Any("error", err))
		return err
	}

	// 4. Consult the role hierarchy.
	if !domain.CanRemoveMember(requester.Role, membership.Role) {
		return ErrInsufficientRole
	}

	// 5. Delete, counting owners in the same transaction so two
	// concurrent removals cannot both observe a spare owner.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if membership.Role == domain.RoleOwner {
			owners, err := tx.Memberships().CountOwners(ctx, membership.CompanyID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}
		return tx.Memberships().DeleteMembership(ctx, membershipID)
	})
	if err != nil {
		return err
	}

	log.Info("member removed",
		slog.String("membership_id", membershipID),
		slog.String("company_id", membership.CompanyID),
		slog.String("requester_id", requesterID),
	)

	return nil
}

// ListCompanyMembers returns a page of a company's members ordered by
// authority then join time. Any member may list; no role restriction.
func (s *MembershipService) ListCompanyMembers(
	ctx context.Context,
	companyID string,
	requesterID string,
	page, pageSize int,
) ([]domain.Member, domain.PageInfo, error) {
	log := slogx.FromContext(ctx)

	// 1. Company must exist.
	if _, err := s.Store.Companies().GetCompanyByID(ctx, companyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.PageInfo{}, ErrCompanyNotFound
		}
		log.Error("failed to fetch company", slog.Any("error", err))
		return nil, domain.PageInfo{}, err
	}

	// 2. Requester must be a member.
	if _, err := s.Store.Memberships().GetMembershipByUserAndCompany(ctx, requesterID, companyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.PageInfo{}, ErrNotCompanyMember
		}
		log.Error("failed to fetch requester membership", slog.Any("error", err))
		return nil, domain.PageInfo{}, err
	}

	// 3. Count and fetch the page.
	pg := domain.NewPageInfo(page, pageSize, 0)

	total, err := s.Store.Memberships().CountMembersByCompany(ctx, companyID)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	pg = domain.NewPageInfo(pg.Page, pg.PageSize, total)

	members, err := s.Store.Memberships().ListMembersByCompany(ctx, companyID, pg.PageSize, pg.Offset())
	if err != nil {
		return nil, domain.PageInfo{}, err
	}

	return members, pg, nil
}
