package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akondrashov/stash/internal/common"
	"github.com/akondrashov/stash/internal/server/models"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type itemCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type itemUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// userResponse is the public view of an account. The digest never leaves
// the server.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func toItemResponse(i *models.Item) itemResponse {
	return itemResponse{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func currentUser(c *gin.Context) (*models.User, error) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, fmt.Errorf("%w: no account in request context", common.ErrorUnauthorized)
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil, fmt.Errorf("%w: no account in request context", common.ErrorUnauthorized)
	}
	return user, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		respondError(c, common.ErrorUnavailable)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Email, req.Password, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleProfile(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleItemList(c *gin.Context) {
	list, err := s.items.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]itemResponse, 0, len(list))
	for _, i := range list {
		result = append(result, toItemResponse(i))
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleItemCreate(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req itemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := s.items.Create(c.Request.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toItemResponse(item))
}

func (s *Server) handleItemGet(c *gin.Context) {
	id, err := itemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := s.items.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *Server) handleItemUpdate(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := itemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req itemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	upd := &models.ItemUpdate{Name: req.Name, Description: req.Description}
	item, err := s.items.Update(c.Request.Context(), user.ID, id, upd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *Server) handleItemDelete(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := itemID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.items.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// itemID validates the path parameter. Identifiers are UUIDs in every
// backend, so anything else is rejected before touching the store.
func itemID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", common.ErrorValidation
	}
	return id, nil
}
