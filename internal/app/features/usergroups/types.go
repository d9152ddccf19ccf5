// internal/app/features/usergroups/types.go
package usergroups

import (
	groupsvc "github.com/dalemusser/grouphub/internal/app/service/groups"
	"github.com/dalemusser/grouphub/internal/domain/models"
)

// groupRequest is the body of create and update calls. institutionId,
// productId, and status are ignored on update; those fields are immutable
// after creation.
type groupRequest struct {
	InstitutionID string   `json:"institutionId"`
	ProductID     string   `json:"productId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Status        string   `json:"status"`
	Members       []string `json:"members"`
}

func (req groupRequest) draft() groupsvc.Draft {
	return groupsvc.Draft{
		InstitutionID: req.InstitutionID,
		ProductID:     req.ProductID,
		Name:          req.Name,
		Description:   req.Description,
		Status:        models.UserGroupStatus(req.Status),
		Members:       req.Members,
	}
}

// groupResponse is the JSON shape of a group. Members is always a
// non-nil array so clients never see null.
type groupResponse struct {
	ID            string   `json:"id"`
	InstitutionID string   `json:"institutionId"`
	ProductID     string   `json:"productId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Status        string   `json:"status"`
	Members       []string `json:"members"`
	CreatedAt     string   `json:"createdAt"`
	CreatedBy     string   `json:"createdBy"`
	ModifiedAt    string   `json:"modifiedAt"`
	ModifiedBy    string   `json:"modifiedBy"`
}

func toResponse(g models.UserGroup) groupResponse {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return groupResponse{
		ID:            g.ID,
		InstitutionID: g.InstitutionID,
		ProductID:     g.ProductID,
		Name:          g.Name,
		Description:   g.Description,
		Status:        string(g.Status),
		Members:       members,
		CreatedAt:     g.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		CreatedBy:     g.CreatedBy,
		ModifiedAt:    g.ModifiedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		ModifiedBy:    g.ModifiedBy,
	}
}
