package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/devlinkhq/devlink/internal/application/usecase/profile"
	"github.com/devlinkhq/devlink/internal/domain/profile"
	"github.com/devlinkhq/devlink/pkg/apperror"
	"github.com/devlinkhq/devlink/pkg/logger"
)

var upsertProfileMessages = map[string]string{
	"status": "Status is required",
	"skills": "Skills is required",
}

var experienceMessages = map[string]string{
	"title":   "Title is required",
	"company": "Company is required",
	"from":    "From Date is required",
}

var educationMessages = map[string]string{
	"school":       "School is required",
	"degree":       "Degree is required",
	"fieldofstudy": "Field of study is required",
	"from":         "From Date is required",
}

type ProfileHandler struct {
	profileUseCase       *profileUC.ProfileUseCase
	deleteAccountUseCase *profileUC.DeleteAccountUseCase
	githubReposUseCase   *profileUC.GithubReposUseCase
	logger               logger.Logger
}

func NewProfileHandler(
	uc *profileUC.ProfileUseCase,
	deleteUC *profileUC.DeleteAccountUseCase,
	githubUC *profileUC.GithubReposUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:       uc,
		deleteAccountUseCase: deleteUC,
		githubReposUseCase:   githubUC,
		logger:               log,
	}
}

// Me returns the caller's own profile.
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.profileUseCase.ExecuteGet(c.Request.Context(), profileUC.GetProfileInput{UserID: userID})
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "There is no profile for the user"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) List(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profiles)
}

// ByUserID serves the public profile page. A malformed id and an absent
// profile answer the same way.
func (h *ProfileHandler) ByUserID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Profile not found"})
		return
	}

	output, err := h.profileUseCase.ExecuteGet(c.Request.Context(), profileUC.GetProfileInput{UserID: userID})
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Profile not found"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Profile)
}

// Upsert creates the caller's profile on first use and updates it in place
// afterwards.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingErrors(err, upsertProfileMessages))
		return
	}

	fields := req.ToUpdate()
	if len(fields.Skills) == 0 {
		// "required" passes on a string of separators; splitting must still
		// leave at least one skill.
		c.Error(apperror.NewValidation([]apperror.FieldError{{Message: "Skills is required", Param: "skills"}}))
		return
	}

	output, err := h.profileUseCase.ExecuteUpsert(c.Request.Context(), profileUC.UpsertProfileInput{
		UserID: userID,
		Fields: fields,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingErrors(err, experienceMessages))
		return
	}

	p, err := h.profileUseCase.ExecuteAddExperience(c.Request.Context(), profileUC.AddExperienceInput{
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		h.respondProfileMutation(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// RemoveExperience deletes the entry matching the path parameter. An unknown
// or malformed id is a no-op: the unchanged profile comes back with 200.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	expID, err := uuid.Parse(c.Param("expId"))
	if err != nil {
		expID = uuid.Nil
	}

	p, err := h.profileUseCase.ExecuteRemoveExperience(c.Request.Context(), profileUC.RemoveExperienceInput{
		UserID:       userID,
		ExperienceID: expID,
	})
	h.respondProfileMutation(c, p, err)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingErrors(err, educationMessages))
		return
	}

	p, err := h.profileUseCase.ExecuteAddEducation(c.Request.Context(), profileUC.AddEducationInput{
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		h.respondProfileMutation(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	eduID, err := uuid.Parse(c.Param("eduId"))
	if err != nil {
		eduID = uuid.Nil
	}

	p, err := h.profileUseCase.ExecuteRemoveEducation(c.Request.Context(), profileUC.RemoveEducationInput{
		UserID:      userID,
		EducationID: eduID,
	})
	h.respondProfileMutation(c, p, err)
}

func (h *ProfileHandler) respondProfileMutation(c *gin.Context, p *profile.Profile, err error) {
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Profile not found"})
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteAccount removes the caller's posts, profile and user record, in that
// order.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	if err := h.deleteAccountUseCase.Execute(c.Request.Context(), profileUC.DeleteAccountInput{UserID: userID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

// GithubRepos relays the raw GitHub answer for the username path parameter.
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	username := c.Param("username")

	body, err := h.githubReposUseCase.Execute(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, profileUC.ErrGithubUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "No Github profile found"})
			return
		}
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
