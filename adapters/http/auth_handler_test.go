package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *HandlerTestSuite) TestRegister_ReturnsUsableToken() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")

	claims, err := s.jwtSvc.ValidateToken(token)
	s.NoError(err)
	s.Equal(u.ID, claims.UserID)

	s.Contains(u.AvatarURL, "gravatar.com/avatar/")
	s.NotEqual("password123", u.PasswordHash)
}

func (s *HandlerTestSuite) TestRegister_DuplicateEmail() {
	s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodPost, "/api/users", "", gin.H{
		"name":     "Other Jane",
		"email":    "jane@example.com",
		"password": "password123",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors":[{"msg":"User already exists","param":"email"}]}`, w.Body.String())
	s.Equal(1, s.userRepo.count())
}

func (s *HandlerTestSuite) TestRegister_ValidationListsEveryViolatedField() {
	w := s.request(http.MethodPost, "/api/users", "", gin.H{
		"email":    "not-an-email",
		"password": "short",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	params := s.errorParams(w)
	s.ElementsMatch([]string{"name", "email", "password"}, params)
}

func (s *HandlerTestSuite) TestLogin_Success() {
	u, _ := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodPost, "/api/auth", "", gin.H{
		"email":    "jane@example.com",
		"password": "password123",
	})
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	s.decode(w, &resp)

	claims, err := s.jwtSvc.ValidateToken(resp.Token)
	s.NoError(err)
	s.Equal(u.ID, claims.UserID)
}

func (s *HandlerTestSuite) TestLogin_WrongPassword() {
	s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodPost, "/api/auth", "", gin.H{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors":[{"msg":"Invalid Credentials","param":"email"}]}`, w.Body.String())
}

func (s *HandlerTestSuite) TestLogin_UnknownEmailAnswersLikeWrongPassword() {
	w := s.request(http.MethodPost, "/api/auth", "", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors":[{"msg":"Invalid Credentials","param":"email"}]}`, w.Body.String())
}

func (s *HandlerTestSuite) TestCurrentUser_OmitsPasswordHash() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodGet, "/api/auth", token, nil)
	s.Equal(http.StatusOK, w.Code)

	var body map[string]any
	s.decode(w, &body)
	s.Equal(u.Email, body["email"])
	s.Equal(u.Name, body["name"])
	s.NotContains(body, "password")
	s.NotContains(body, "password_hash")
}

func (s *HandlerTestSuite) TestCurrentUser_NoToken() {
	w := s.request(http.MethodGet, "/api/auth", "", nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"msg":"No token, authorization denied"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestCurrentUser_TamperedToken() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodGet, "/api/auth", token+"x", nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"msg":"Token is not valid"}`, w.Body.String())
}
