// Package groups implements the user-group lifecycle operations on top of
// the group store. All business rules live here: argument checks, the
// status gate, duplicate handling, and the mapping of conditional-update
// outcomes onto typed errors. The package is transport independent; the
// acting user is always an explicit parameter.
package groups

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/grouphub/internal/app/policy/grouppolicy"
	groupstore "github.com/dalemusser/grouphub/internal/app/store/groups"
	"github.com/dalemusser/grouphub/internal/app/store/queries/groupqueries"
	"github.com/dalemusser/grouphub/internal/app/system/apperr"
	"github.com/dalemusser/grouphub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/grouphub/internal/app/system/paging"
	"github.com/dalemusser/grouphub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	msgSuspendedGroup = "Trying to modify suspended group"
	msgUpdateFailed   = "Couldn't update resource"
	msgGroupNotFound  = "No user group found with the given id"
	msgDuplicateGroup = "A group with the same name already exists in ACTIVE or SUSPENDED state"
)

// Store is the persistence surface the service needs. *groupstore.Store
// satisfies it; tests substitute a fake.
type Store interface {
	FindByID(ctx context.Context, id string) (models.UserGroup, error)
	Insert(ctx context.Context, g models.UserGroup) (models.UserGroup, error)
	Replace(ctx context.Context, g models.UserGroup) (models.UserGroup, error)
	UpdateStatus(ctx context.Context, id string, status models.UserGroupStatus, actor string) (groupstore.UpdateResult, error)
	AddMember(ctx context.Context, id, memberID, actor string) (groupstore.UpdateResult, error)
	RemoveMember(ctx context.Context, id, memberID, actor string) (groupstore.UpdateResult, error)
	RemoveMemberFromAll(ctx context.Context, memberID, institutionID, productID, actor string) (int64, error)
}

// Lister runs the validated list query.
type Lister interface {
	ListGroups(ctx context.Context, f groupqueries.Filter, sortField string, page paging.Page) ([]models.UserGroup, error)
}

type Service struct {
	store Store
	list  Lister
	log   *zap.Logger
}

func New(store Store, list Lister, logger *zap.Logger) *Service {
	return &Service{store: store, list: list, log: logger}
}

// Draft is the caller-supplied content for creating or updating a group.
type Draft struct {
	InstitutionID string
	ProductID     string
	Name          string
	Description   string
	Status        models.UserGroupStatus
	Members       []string
}

// Create inserts a new group. The id is assigned here (an ObjectID hex
// string) and both audit stamps are set to the actor. A blank status
// defaults to ACTIVE; DELETED is not a creatable state.
func (s *Service) Create(ctx context.Context, actor string, d Draft) (models.UserGroup, error) {
	if actor == "" {
		return models.UserGroup{}, apperr.InvalidArgument("An acting user id is required")
	}
	if d.InstitutionID == "" {
		return models.UserGroup{}, apperr.InvalidArgument("An institution id is required")
	}
	if d.ProductID == "" {
		return models.UserGroup{}, apperr.InvalidArgument("A product id is required")
	}
	name := htmlsanitize.Strip(d.Name)
	if name == "" {
		return models.UserGroup{}, apperr.InvalidArgument("A group name is required")
	}

	status := d.Status
	if status == "" {
		status = grouppolicy.InitialStatus
	}
	if !grouppolicy.CanCreateWith(status) {
		return models.UserGroup{}, apperr.InvalidArgument("A group can only be created as ACTIVE or SUSPENDED")
	}

	now := time.Now().UTC()
	g := models.UserGroup{
		ID:            primitive.NewObjectID().Hex(),
		InstitutionID: d.InstitutionID,
		ProductID:     d.ProductID,
		Name:          name,
		Description:   htmlsanitize.Strip(d.Description),
		Status:        status,
		Members:       dedupe(d.Members),
		CreatedAt:     now,
		CreatedBy:     actor,
		ModifiedAt:    now,
		ModifiedBy:    actor,
	}

	created, err := s.store.Insert(ctx, g)
	if err != nil {
		if errors.Is(err, groupstore.ErrDuplicateGroup) {
			return models.UserGroup{}, apperr.AlreadyExists(msgDuplicateGroup, err)
		}
		return models.UserGroup{}, err
	}
	s.log.Info("user group created",
		zap.String("group_id", created.ID),
		zap.String("institution_id", created.InstitutionID),
		zap.String("product_id", created.ProductID))
	return created, nil
}

// Get fetches a single group by id, including DELETED ones.
func (s *Service) Get(ctx context.Context, id string) (models.UserGroup, error) {
	if id == "" {
		return models.UserGroup{}, apperr.InvalidArgument("A user group id is required")
	}
	g, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.UserGroup{}, apperr.NotFound(msgGroupNotFound)
		}
		return models.UserGroup{}, err
	}
	return g, nil
}

// List returns the page of groups matching the filter. Validation of the
// filter/sort combination happens in the query builder.
func (s *Service) List(ctx context.Context, f groupqueries.Filter, sortField string, page paging.Page) ([]models.UserGroup, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, apperr.ValidationFailed("Given status parameter isn't valid")
	}
	return s.list.ListGroups(ctx, f, sortField, page)
}

// Update replaces the caller-editable content of a group: name,
// description, and the member set. Institution, product, status, id, and
// the creation stamps are immutable here. SUSPENDED groups reject the
// update; DELETED groups report not found.
func (s *Service) Update(ctx context.Context, actor, id string, d Draft) (models.UserGroup, error) {
	if actor == "" {
		return models.UserGroup{}, apperr.InvalidArgument("An acting user id is required")
	}
	if id == "" {
		return models.UserGroup{}, apperr.InvalidArgument("A user group id is required")
	}
	name := htmlsanitize.Strip(d.Name)
	if name == "" {
		return models.UserGroup{}, apperr.InvalidArgument("A group name is required")
	}

	current, err := s.gate(ctx, id)
	if err != nil {
		return models.UserGroup{}, err
	}

	current.Name = name
	current.Description = htmlsanitize.Strip(d.Description)
	current.Members = dedupe(d.Members)
	current.ModifiedAt = time.Now().UTC()
	current.ModifiedBy = actor

	updated, err := s.store.Replace(ctx, current)
	if err != nil {
		switch {
		case errors.Is(err, groupstore.ErrDuplicateGroup):
			return models.UserGroup{}, apperr.AlreadyExists(msgDuplicateGroup, err)
		case errors.Is(err, mongo.ErrNoDocuments):
			return models.UserGroup{}, apperr.NotFound(msgGroupNotFound)
		}
		return models.UserGroup{}, err
	}
	return updated, nil
}

// Delete moves a group to DELETED. Deleting an already-DELETED group is a
// success, so retried deletes are harmless.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	if actor == "" {
		return apperr.InvalidArgument("An acting user id is required")
	}
	if id == "" {
		return apperr.InvalidArgument("A user group id is required")
	}
	res, err := s.store.UpdateStatus(ctx, id, models.StatusDeleted, actor)
	if err != nil {
		return err
	}
	if res.Matched == 0 {
		// Either the group never existed or it is already DELETED.
		g, err := s.store.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return apperr.NotFound(msgGroupNotFound)
			}
			return err
		}
		if g.Status == models.StatusDeleted {
			return nil
		}
		return apperr.UpdateConflict(msgUpdateFailed)
	}
	s.log.Info("user group deleted", zap.String("group_id", id))
	return nil
}

// Suspend moves a group to SUSPENDED. Suspending a SUSPENDED group is a
// no-op success; only DELETED groups are out of reach.
func (s *Service) Suspend(ctx context.Context, actor, id string) error {
	return s.setStatus(ctx, actor, id, models.StatusSuspended)
}

// Activate moves a group to ACTIVE. Activating an ACTIVE group is a
// no-op success; only DELETED groups are out of reach.
func (s *Service) Activate(ctx context.Context, actor, id string) error {
	return s.setStatus(ctx, actor, id, models.StatusActive)
}

func (s *Service) setStatus(ctx context.Context, actor, id string, to models.UserGroupStatus) error {
	if actor == "" {
		return apperr.InvalidArgument("An acting user id is required")
	}
	if id == "" {
		return apperr.InvalidArgument("A user group id is required")
	}
	res, err := s.store.UpdateStatus(ctx, id, to, actor)
	if err != nil {
		return err
	}
	if res.Matched == 0 {
		return apperr.NotFound(msgGroupNotFound)
	}
	s.log.Info("user group status changed",
		zap.String("group_id", id),
		zap.String("status", string(to)))
	return nil
}

// AddMember adds a user to an ACTIVE group. Adding a user who is already
// a member succeeds without changing the member set.
func (s *Service) AddMember(ctx context.Context, actor, groupID, memberID string) error {
	if err := s.memberArgs(actor, groupID, memberID); err != nil {
		return err
	}
	if _, err := s.gate(ctx, groupID); err != nil {
		return err
	}
	res, err := s.store.AddMember(ctx, groupID, memberID, actor)
	if err != nil {
		return err
	}
	if res.Matched == 0 {
		// The group changed state between the gate read and the write.
		return apperr.NotFound(msgGroupNotFound)
	}
	return nil
}

// RemoveMember removes a user from an ACTIVE group. A matched write that
// changed nothing means the precondition moved under us, reported as an
// update conflict.
func (s *Service) RemoveMember(ctx context.Context, actor, groupID, memberID string) error {
	if err := s.memberArgs(actor, groupID, memberID); err != nil {
		return err
	}
	if _, err := s.gate(ctx, groupID); err != nil {
		return err
	}
	res, err := s.store.RemoveMember(ctx, groupID, memberID, actor)
	if err != nil {
		return err
	}
	if res.Matched == 0 {
		return apperr.NotFound(msgGroupNotFound)
	}
	if res.Modified == 0 {
		return apperr.UpdateConflict(msgUpdateFailed)
	}
	return nil
}

// RemoveMemberEverywhere strips a user from every group in the given
// institution/product scope, regardless of group status. Used when a user
// is offboarded from a product.
func (s *Service) RemoveMemberEverywhere(ctx context.Context, actor, memberID, institutionID, productID string) error {
	if actor == "" {
		return apperr.InvalidArgument("An acting user id is required")
	}
	if memberID == "" {
		return apperr.InvalidArgument("A member id is required")
	}
	if institutionID == "" {
		return apperr.InvalidArgument("An institution id is required")
	}
	if productID == "" {
		return apperr.InvalidArgument("A product id is required")
	}
	modified, err := s.store.RemoveMemberFromAll(ctx, memberID, institutionID, productID, actor)
	if err != nil {
		return err
	}
	if modified == 0 {
		return apperr.UpdateConflict(msgUpdateFailed)
	}
	s.log.Info("member removed from all groups",
		zap.String("member_id", memberID),
		zap.String("institution_id", institutionID),
		zap.String("product_id", productID),
		zap.Int64("groups_modified", modified))
	return nil
}

// gate reads the group and applies the status gate for content and member
// mutations: ACTIVE passes, SUSPENDED conflicts, DELETED (and absent) is
// not found.
func (s *Service) gate(ctx context.Context, id string) (models.UserGroup, error) {
	g, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.UserGroup{}, apperr.NotFound(msgGroupNotFound)
		}
		return models.UserGroup{}, err
	}
	if g.Status == models.StatusDeleted {
		return models.UserGroup{}, apperr.NotFound(msgGroupNotFound)
	}
	if !grouppolicy.CanModify(g.Status) {
		return models.UserGroup{}, apperr.UpdateConflict(msgSuspendedGroup)
	}
	return g, nil
}

func (s *Service) memberArgs(actor, groupID, memberID string) error {
	if actor == "" {
		return apperr.InvalidArgument("An acting user id is required")
	}
	if groupID == "" {
		return apperr.InvalidArgument("A user group id is required")
	}
	if memberID == "" {
		return apperr.InvalidArgument("A member id is required")
	}
	return nil
}

// dedupe keeps the first occurrence of each member id, dropping blanks.
func dedupe(members []string) []string {
	out := make([]string, 0, len(members))
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
