package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/devlinkhq/devlink/internal/application/usecase/auth"
	"github.com/devlinkhq/devlink/internal/domain/user"
	"github.com/devlinkhq/devlink/pkg/apperror"
)

var registerMessages = map[string]string{
	"name":     "Name is required",
	"email":    "Please include a valid email",
	"password": "Please enter a password with 6 or more characters",
}

var loginMessages = map[string]string{
	"email":    "Please include a valid email",
	"password": "Password is required",
}

type AuthHandler struct {
	registerUseCase    *authUC.RegisterUseCase
	loginUseCase       *authUC.LoginUseCase
	currentUserUseCase *authUC.CurrentUserUseCase
}

func NewAuthHandler(registerUC *authUC.RegisterUseCase, loginUC *authUC.LoginUseCase, currentUserUC *authUC.CurrentUserUseCase) *AuthHandler {
	return &AuthHandler{
		registerUseCase:    registerUC,
		loginUseCase:       loginUC,
		currentUserUseCase: currentUserUC,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingErrors(err, registerMessages))
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), authUC.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []apperror.FieldError{{Message: "User already exists", Param: "email"}}})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": output.AccessToken})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingErrors(err, loginMessages))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, authUC.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []apperror.FieldError{{Message: "Invalid Credentials", Param: "email"}}})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": output.AccessToken})
}

// CurrentUser returns the authenticated user without the password hash.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.currentUserUseCase.Execute(c.Request.Context(), authUC.CurrentUserInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.User)
}
