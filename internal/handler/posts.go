package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/GalleryApp/post-service/internal/dto"
	"github.com/GalleryApp/post-service/internal/service"
	"github.com/GalleryApp/post-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) postsList(c *gin.Context) {
	posts, err := h.services.Post.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(posts))
}

func (h *Handler) postsCreate(c *gin.Context) {
	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidJSONBody.Error()))
		return
	}

	input, err := dto.ValidateCreatePost(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), *input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(createdPost))
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(errPostNotFound.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(post))
}

func (h *Handler) postsGetContent(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	parsed, err := h.services.Post.FindContentByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(errPostNotFound.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(parsed))
}

func (h *Handler) postsUpdate(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidJSONBody.Error()))
		return
	}

	input, err := dto.ValidateUpdatePost(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), postID, *input)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(errPostNotFound.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(updatedPost))
}

func (h *Handler) postsDelete(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), postID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(errPostNotFound.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}

// postIDParam validates the path identifier and writes the 400 response
// itself when the id is not a UUID.
func (h *Handler) postIDParam(c *gin.Context) (uuid.UUID, bool) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	if !utils.IsUUID(postIDString) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidPostID.Error()))
		return uuid.Nil, false
	}

	postID, err := uuid.Parse(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidPostID.Error()))
		return uuid.Nil, false
	}

	return postID, true
}
