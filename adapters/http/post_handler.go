package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	postUC "github.com/devlinkhq/devlink/internal/application/usecase/post"
	"github.com/devlinkhq/devlink/internal/domain/post"
	"github.com/devlinkhq/devlink/pkg/apperror"
)

var postMessages = map[string]string{
	"text": "Text is required",
}

type PostHandler struct {
	createUseCase  *postUC.CreatePostUseCase
	listUseCase    *postUC.ListPostsUseCase
	getUseCase     *postUC.GetPostUseCase
	deleteUseCase  *postUC.DeletePostUseCase
	likeUseCase    *postUC.LikePostUseCase
	commentUseCase *postUC.CommentPostUseCase
}

func NewPostHandler(
	createUC *postUC.CreatePostUseCase,
	listUC *postUC.ListPostsUseCase,
	getUC *postUC.GetPostUseCase,
	deleteUC *postUC.DeletePostUseCase,
	likeUC *postUC.LikePostUseCase,
	commentUC *postUC.CommentPostUseCase,
) *PostHandler {
	return &PostHandler{
		createUseCase:  createUC,
		listUseCase:    listUC,
		getUseCase:     getUC,
		deleteUseCase:  deleteUC,
		likeUseCase:    likeUC,
		commentUseCase: commentUC,
	}
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingErrors(err, postMessages))
		return
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), postUC.CreatePostInput{
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Post)
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return
	}

	p, err := h.getUseCase.Execute(c.Request.Context(), postID)
	if err != nil {
		h.respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), postUC.DeletePostInput{
		PostID: postID,
		UserID: userID,
	}); err != nil {
		h.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}

func (h *PostHandler) Like(c *gin.Context) {
	h.handleLike(c, true)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	h.handleLike(c, false)
}

func (h *PostHandler) handleLike(c *gin.Context, like bool) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return
	}

	input := postUC.LikeInput{PostID: postID, UserID: userID}

	var p *post.Post
	if like {
		p, err = h.likeUseCase.ExecuteLike(c.Request.Context(), input)
	} else {
		p, err = h.likeUseCase.ExecuteUnlike(c.Request.Context(), input)
	}
	if err != nil {
		h.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, p.Likes)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingErrors(err, postMessages))
		return
	}

	p, err := h.commentUseCase.ExecuteAdd(c.Request.Context(), postUC.AddCommentInput{
		PostID: postID,
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		h.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, p.Comments)
}

func (h *PostHandler) RemoveComment(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return
	}

	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Comment does not exist"})
		return
	}

	p, err := h.commentUseCase.ExecuteRemove(c.Request.Context(), postUC.RemoveCommentInput{
		PostID:    postID,
		CommentID: commentID,
		UserID:    userID,
	})
	if err != nil {
		h.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, p.Comments)
}

func (h *PostHandler) respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
	case errors.Is(err, post.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Comment does not exist"})
	case errors.Is(err, post.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
	case errors.Is(err, post.ErrAlreadyLiked):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Post already liked"})
	case errors.Is(err, post.ErrNotYetLiked):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Post has not yet been liked"})
	default:
		c.Error(err)
	}
}
