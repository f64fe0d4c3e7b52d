package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/campus-connect/internal/handlers/dto"
	"github.com/thereayou/campus-connect/internal/middleware"
	"github.com/thereayou/campus-connect/internal/models"
	"github.com/thereayou/campus-connect/internal/services"
	"github.com/thereayou/campus-connect/pkg/httperr"
)

const clubsLimit = 100

type ClubHandler struct {
	clubs services.ClubStore
}

func NewClubHandler(clubs services.ClubStore) *ClubHandler {
	return &ClubHandler{clubs: clubs}
}

// CreateClub создает клуб, создатель — единственный админ и участник
func (h *ClubHandler) CreateClub(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Club name is required"))
		return
	}

	club := &models.Club{
		Name:          req.Name,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
	}

	if err := h.clubs.CreateClub(club, userID); err != nil {
		c.Error(err)
		return
	}

	full, err := h.clubs.GetClub(club.ID.String())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, formatClubResponse(full))
}

// ListClubs возвращает список клубов
func (h *ClubHandler) ListClubs(c *gin.Context) {
	clubs, err := h.clubs.ListClubs(clubsLimit)
	if err != nil {
		c.Error(err)
		return
	}

	responses := make([]dto.ClubResponse, len(clubs))
	for i := range clubs {
		responses[i] = formatClubResponse(&clubs[i])
	}

	c.JSON(http.StatusOK, responses)
}

// ToggleMembership вступает в клуб или выходит из него. Обновление
// затрагивает обе стороны связи: members клуба и clubs пользователя.
func (h *ClubHandler) ToggleMembership(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(httperr.NotFound("Club not found"))
		return
	}

	membersCount, joined, err := h.clubs.ToggleClubMembership(clubID, userID)
	if err != nil {
		c.Error(notFoundOr(err, "Club not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"membersCount": membersCount,
		"joined":       joined,
	})
}
