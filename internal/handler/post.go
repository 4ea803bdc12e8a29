package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"back2me/internal/middleware"
	"back2me/internal/model"
	"back2me/internal/store"
)

type PostHandler struct {
	Store *store.Store
}

type createPostBody struct {
	Status      model.Status `json:"status" binding:"required,oneof=lost found"`
	ItemName    string       `json:"item_name" binding:"required"`
	Location    string       `json:"location" binding:"required"`
	Place       string       `json:"place" binding:"required"`
	Description string       `json:"description" binding:"required"`
	ImageURL    *string      `json:"image_url"`
}

func (h *PostHandler) Create(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var body createPostBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	post := h.Store.CreatePost(store.NewPost{
		UserID:      sess.UserID,
		Status:      body.Status,
		ItemName:    body.ItemName,
		Location:    body.Location,
		Place:       body.Place,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	}, time.Now().Unix())

	c.JSON(http.StatusOK, gin.H{"success": true, "post_id": post.ID, "post": post})
}

func (h *PostHandler) List(c *gin.Context) {
	filter := store.PostFilter{
		Status:   model.Status(c.Query("status")),
		ItemName: c.Query("item_name"),
		Location: c.Query("location"),
	}
	posts := h.Store.ListPosts(filter)
	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

func (h *PostHandler) Search(c *gin.Context) {
	posts := h.Store.SearchPosts(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.Store.GetPost(id)
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}
