package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devlinkhq/devlink/internal/domain/post"
)

// createPost posts through the API and returns the decoded body.
func (s *HandlerTestSuite) createPost(token, text string) *post.Post {
	w := s.request(http.MethodPost, "/api/posts", token, gin.H{"text": text})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var p post.Post
	s.decode(w, &p)
	return &p
}

func (s *HandlerTestSuite) TestCreatePost_SnapshotsAuthor() {
	u, token := s.seedUser("Jane Doe", "jane@example.com")

	p := s.createPost(token, "hello world")

	s.Equal("hello world", p.Text)
	s.Equal(u.ID, p.UserID)
	s.Equal(u.Name, p.Name)
	s.Equal(u.AvatarURL, p.AvatarURL)
	s.Empty(p.Likes)
	s.Empty(p.Comments)

	s.Eventually(func() bool {
		for _, t := range s.publisher.postEventTypes() {
			if t == "post.created" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func (s *HandlerTestSuite) TestCreatePost_Validation() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodPost, "/api/posts", token, gin.H{})

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors":[{"msg":"Text is required","param":"text"}]}`, w.Body.String())
}

func (s *HandlerTestSuite) TestPosts_RequireAuth() {
	w := s.request(http.MethodGet, "/api/posts", "", nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"msg":"No token, authorization denied"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestListAndGetPosts() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")
	created := s.createPost(token, "hello world")

	w := s.request(http.MethodGet, "/api/posts", token, nil)
	s.Equal(http.StatusOK, w.Code)

	var listing []post.Post
	s.decode(w, &listing)
	s.Len(listing, 1)

	w = s.request(http.MethodGet, "/api/posts/"+created.ID.String(), token, nil)
	s.Equal(http.StatusOK, w.Code)

	var got post.Post
	s.decode(w, &got)
	s.Equal(created.ID, got.ID)
}

func (s *HandlerTestSuite) TestGetPost_MalformedAndUnknownID() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")

	w := s.request(http.MethodGet, "/api/posts/not-a-uuid", token, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"msg":"Post not found"}`, w.Body.String())

	w = s.request(http.MethodGet, "/api/posts/"+uuid.NewString(), token, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"msg":"Post not found"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestDeletePost_OnlyByOwner() {
	_, ownerToken := s.seedUser("Jane Doe", "jane@example.com")
	_, otherToken := s.seedUser("John Roe", "john@example.com")
	p := s.createPost(ownerToken, "hello world")

	w := s.request(http.MethodDelete, "/api/posts/"+p.ID.String(), otherToken, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"msg":"User not authorized"}`, w.Body.String())
	s.Equal(1, s.postRepo.count())

	w = s.request(http.MethodDelete, "/api/posts/"+p.ID.String(), ownerToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"msg":"Post removed"}`, w.Body.String())
	s.Equal(0, s.postRepo.count())
}

func (s *HandlerTestSuite) TestLikeAndUnlike() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")
	p := s.createPost(token, "hello world")

	w := s.request(http.MethodPut, "/api/posts/like/"+p.ID.String(), token, nil)
	s.Equal(http.StatusOK, w.Code)

	var likes []post.Like
	s.decode(w, &likes)
	s.Len(likes, 1)

	w = s.request(http.MethodPut, "/api/posts/like/"+p.ID.String(), token, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"msg":"Post already liked"}`, w.Body.String())

	w = s.request(http.MethodPut, "/api/posts/unlike/"+p.ID.String(), token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &likes)
	s.Empty(likes)

	w = s.request(http.MethodPut, "/api/posts/unlike/"+p.ID.String(), token, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"msg":"Post has not yet been liked"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestComments_NewestFirst() {
	_, token := s.seedUser("Jane Doe", "jane@example.com")
	p := s.createPost(token, "hello world")

	w := s.request(http.MethodPost, "/api/posts/comment/"+p.ID.String(), token, gin.H{"text": "first"})
	s.Require().Equal(http.StatusOK, w.Code)
	w = s.request(http.MethodPost, "/api/posts/comment/"+p.ID.String(), token, gin.H{"text": "second"})
	s.Require().Equal(http.StatusOK, w.Code)

	var comments []post.Comment
	s.decode(w, &comments)
	s.Require().Len(comments, 2)
	s.Equal("second", comments[0].Text)
	s.Equal("first", comments[1].Text)
}

func (s *HandlerTestSuite) TestRemoveComment_OnlyByCommentAuthor() {
	_, ownerToken := s.seedUser("Jane Doe", "jane@example.com")
	_, otherToken := s.seedUser("John Roe", "john@example.com")
	p := s.createPost(ownerToken, "hello world")

	w := s.request(http.MethodPost, "/api/posts/comment/"+p.ID.String(), ownerToken, gin.H{"text": "mine"})
	s.Require().Equal(http.StatusOK, w.Code)

	var comments []post.Comment
	s.decode(w, &comments)
	commentID := comments[0].ID.String()

	w = s.request(http.MethodDelete, "/api/posts/comment/"+p.ID.String()+"/"+commentID, otherToken, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"msg":"User not authorized"}`, w.Body.String())

	w = s.request(http.MethodDelete, "/api/posts/comment/"+p.ID.String()+"/"+uuid.NewString(), ownerToken, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"msg":"Comment does not exist"}`, w.Body.String())

	w = s.request(http.MethodDelete, "/api/posts/comment/"+p.ID.String()+"/"+commentID, ownerToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &comments)
	s.Empty(comments)
}
