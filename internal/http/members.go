package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartlib/library/internal/entities"
)

// MemberStore is the slice of the members repository this controller needs.
type MemberStore interface {
	GetAll() ([]entities.Member, error)
	Create(member *entities.Member) error
	Update(id string, member *entities.Member) error
	Delete(id string) error
}

type MembersController struct {
	store MemberStore
}

func NewMembersController(store MemberStore) *MembersController {
	return &MembersController{store: store}
}

type createMemberRequest struct {
	UserID string `json:"UserID" binding:"required"`
	Name   string `json:"Name" binding:"required"`
	Email  string `json:"Email"`
	Phone  string `json:"Phone"`
}

type updateMemberRequest struct {
	Name  string `json:"Name" binding:"required"`
	Email string `json:"Email"`
	Phone string `json:"Phone"`
}

// GetAllMembers lists all registered members.
func (controller *MembersController) GetAllMembers(c *gin.Context) {
	membersList, err := controller.store.GetAll()
	if err != nil {
		respondInternalError(c, err, "list members")
		return
	}
	c.JSON(http.StatusOK, membersList)
}

// CreateMember registers a member; the registration date is server-set.
func (controller *MembersController) CreateMember(c *gin.Context) {
	var req createMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "UserID and Name are required")
		return
	}

	member := entities.Member{
		UserID: req.UserID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	}
	if err := controller.store.Create(&member); err != nil {
		respondDomainError(c, err, "create member")
		return
	}
	respondCreated(c, member)
}

// UpdateMember edits a member's contact fields.
func (controller *MembersController) UpdateMember(c *gin.Context) {
	id := c.Param("id")

	var req updateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Name is required")
		return
	}

	member := entities.Member{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := controller.store.Update(id, &member); err != nil {
		respondDomainError(c, err, "update member")
		return
	}
	respondSuccess(c, "User updated")
}

// DeleteMember removes a member. Deletes of members with any borrow history
// are blocked with a conflict, same as book deletes.
func (controller *MembersController) DeleteMember(c *gin.Context) {
	id := c.Param("id")
	if err := controller.store.Delete(id); err != nil {
		respondDomainError(c, err, "delete member")
		return
	}
	respondSuccess(c, "User deleted")
}
