package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/devlinkhq/devlink/internal/application/usecase/profile"
	"github.com/devlinkhq/devlink/internal/domain/profile"
)

func (s *HandlerTestSuite) TestUpsertProfile_CreatesAndParsesSkills() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodPost, "/api/profile", token, gin.H{
		"status":  "Developer",
		"skills":  "html,css, js",
		"company": "Acme",
		"twitter": "@jane",
	})
	s.Equal(http.StatusOK, w.Code, w.Body.String())

	var p profile.Profile
	s.decode(w, &p)
	s.Equal(u.ID, p.UserID)
	s.Equal([]string{"html", "css", "js"}, p.Skills)
	s.Equal("Acme", p.Company)
	s.Require().NotNil(p.Social)
	s.Equal("@jane", p.Social.Twitter)

	s.NotNil(s.profRepo.stored(u.ID))
}

func (s *HandlerTestSuite) TestUpsertProfile_Idempotent() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")
	body := gin.H{"status": "Developer", "skills": "go, sql", "location": "Berlin"}

	w := s.request(http.MethodPost, "/api/profile", token, body)
	s.Require().Equal(http.StatusOK, w.Code)
	first := s.profRepo.stored(u.ID)

	w = s.request(http.MethodPost, "/api/profile", token, body)
	s.Require().Equal(http.StatusOK, w.Code)
	second := s.profRepo.stored(u.ID)

	s.Equal(first.Skills, second.Skills)
	s.Equal(first.Status, second.Status)
	s.Equal(first.Location, second.Location)
	s.Equal(first.CreatedAt, second.CreatedAt)
	s.Len(s.profRepo.profiles, 1)
}

func (s *HandlerTestSuite) TestUpsertProfile_SparseUpdateKeepsOtherFields() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")
	s.request(http.MethodPost, "/api/profile", token, gin.H{
		"status":  "Developer",
		"skills":  "go",
		"company": "Acme",
		"bio":     "hello",
	})

	w := s.request(http.MethodPost, "/api/profile", token, gin.H{
		"status": "Senior Developer",
		"skills": "go, sql",
	})
	s.Equal(http.StatusOK, w.Code)

	p := s.profRepo.stored(u.ID)
	s.Equal("Senior Developer", p.Status)
	s.Equal([]string{"go", "sql"}, p.Skills)
	s.Equal("Acme", p.Company)
	s.Equal("hello", p.Bio)
}

func (s *HandlerTestSuite) TestUpsertProfile_ValidationListsEveryViolatedField() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodPost, "/api/profile", token, gin.H{})

	s.Equal(http.StatusBadRequest, w.Code)
	s.ElementsMatch([]string{"status", "skills"}, s.errorParams(w))
}

func (s *HandlerTestSuite) TestUpsertProfile_SkillsOfOnlySeparators() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodPost, "/api/profile", token, gin.H{
		"status": "Developer",
		"skills": " , ,",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors":[{"msg":"Skills is required","param":"skills"}]}`, w.Body.String())
}

func (s *HandlerTestSuite) TestUpsertProfile_NoToken() {
	w := s.request(http.MethodPost, "/api/profile", "", gin.H{
		"status": "Developer",
		"skills": "go",
	})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"msg":"No token, authorization denied"}`, w.Body.String())
	s.Empty(s.profRepo.profiles)
}

func (s *HandlerTestSuite) TestMe_NoProfileYet() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodGet, "/api/profile/me", token, nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"msg":"There is no profile for the user"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestByUserID_MalformedID() {
	w := s.request(http.MethodGet, "/api/profile/user/not-a-uuid", "", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"msg":"Profile not found"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestByUserID_UnknownUser() {
	w := s.request(http.MethodGet, "/api/profile/user/"+uuid.NewString(), "", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"msg":"Profile not found"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestListProfiles_PublicAndCached() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")
	s.seedProfile(token, "Developer", "go")

	w := s.request(http.MethodGet, "/api/profile", "", nil)
	s.Equal(http.StatusOK, w.Code)

	var listing []profile.Profile
	s.decode(w, &listing)
	s.Len(listing, 1)

	// the listing is now cached; a second read must not hit the repo
	cached, err := s.cache.GetAll(context.Background())
	s.NoError(err)
	s.Len(cached, 1)
}

func (s *HandlerTestSuite) TestAddExperience_NewestFirst() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")
	s.seedProfile(token, "Developer", "go")

	w := s.request(http.MethodPut, "/api/profile/experience", token, gin.H{
		"title":   "Junior Dev",
		"company": "Acme",
		"from":    "2018-01-01",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.request(http.MethodPut, "/api/profile/experience", token, gin.H{
		"title":   "Senior Dev",
		"company": "Acme",
		"from":    "2020-01-01",
		"current": true,
	})
	s.Require().Equal(http.StatusOK, w.Code)

	p := s.profRepo.stored(u.ID)
	s.Require().Len(p.Experience, 2)
	s.Equal("Senior Dev", p.Experience[0].Title)
	s.Equal("Junior Dev", p.Experience[1].Title)
	s.True(p.Experience[0].Current)
}

func (s *HandlerTestSuite) TestAddExperience_Validation() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")
	s.seedProfile(token, "Developer", "go")

	w := s.request(http.MethodPut, "/api/profile/experience", token, gin.H{"location": "Berlin"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.ElementsMatch([]string{"title", "company", "from"}, s.errorParams(w))
}

func (s *HandlerTestSuite) TestAddExperience_WithoutProfile() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodPut, "/api/profile/experience", token, gin.H{
		"title":   "Junior Dev",
		"company": "Acme",
		"from":    "2018-01-01",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"msg":"Profile not found"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestRemoveExperience_UnknownIDIsANoOp() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")
	s.seedProfile(token, "Developer", "go")
	s.request(http.MethodPut, "/api/profile/experience", token, gin.H{
		"title":   "Junior Dev",
		"company": "Acme",
		"from":    "2018-01-01",
	})

	w := s.request(http.MethodDelete, "/api/profile/experience/"+uuid.NewString(), token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Len(s.profRepo.stored(u.ID).Experience, 1)

	// a malformed id behaves the same way
	w = s.request(http.MethodDelete, "/api/profile/experience/garbage", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Len(s.profRepo.stored(u.ID).Experience, 1)
}

func (s *HandlerTestSuite) TestRemoveExperience_DeletesMatchingEntry() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")
	s.seedProfile(token, "Developer", "go")
	s.request(http.MethodPut, "/api/profile/experience", token, gin.H{
		"title":   "Junior Dev",
		"company": "Acme",
		"from":    "2018-01-01",
	})

	expID := s.profRepo.stored(u.ID).Experience[0].ID

	w := s.request(http.MethodDelete, "/api/profile/experience/"+expID.String(), token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Empty(s.profRepo.stored(u.ID).Experience)
}

func (s *HandlerTestSuite) TestEducation_AddAndRemove() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")
	s.seedProfile(token, "Developer", "go")

	w := s.request(http.MethodPut, "/api/profile/education", token, gin.H{
		"school":       "MIT",
		"degree":       "BSc",
		"fieldofstudy": "CS",
		"from":         "2014-09-01",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	p := s.profRepo.stored(u.ID)
	s.Require().Len(p.Education, 1)
	s.Equal("MIT", p.Education[0].School)

	w = s.request(http.MethodDelete, "/api/profile/education/"+p.Education[0].ID.String(), token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Empty(s.profRepo.stored(u.ID).Education)
}

func (s *HandlerTestSuite) TestAddEducation_Validation() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")
	s.seedProfile(token, "Developer", "go")

	w := s.request(http.MethodPut, "/api/profile/education", token, gin.H{})

	s.Equal(http.StatusBadRequest, w.Code)
	s.ElementsMatch([]string{"school", "degree", "fieldofstudy", "from"}, s.errorParams(w))
}

func (s *HandlerTestSuite) TestDeleteAccount_CascadesPostsProfileUser() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")
	s.seedProfile(token, "Developer", "go")
	s.request(http.MethodPost, "/api/posts", token, gin.H{"text": "first post"})
	s.request(http.MethodPost, "/api/posts", token, gin.H{"text": "second post"})
	s.Require().Equal(2, s.postRepo.count())

	w := s.request(http.MethodDelete, "/api/profile", token, nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"msg":"User deleted"}`, w.Body.String())
	s.Equal(0, s.postRepo.count())
	s.Nil(s.profRepo.stored(u.ID))
	s.Equal(0, s.userRepo.count())

	// the deletion event is published off the request path
	s.Eventually(func() bool {
		for _, t := range s.publisher.userEventTypes() {
			if t == "user.deleted" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func (s *HandlerTestSuite) TestDeleteAccount_WithoutProfileStillDeletesUser() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodDelete, "/api/profile", token, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(0, s.userRepo.count())
}

func (s *HandlerTestSuite) TestGithubRepos_RelaysUpstreamBody() {
	s.github.body = []byte(`[{"name":"devlink","stargazers_count":42}]`)

	w := s.request(http.MethodGet, "/api/profile/github/janedoe", "", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))
	s.JSONEq(`[{"name":"devlink","stargazers_count":42}]`, w.Body.String())
}

func (s *HandlerTestSuite) TestGithubRepos_UnknownUser() {
	s.github.err = profileUC.ErrGithubUserNotFound

	w := s.request(http.MethodGet, "/api/profile/github/ghost", "", nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"msg":"No Github profile found"}`, w.Body.String())
}
