package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/campus-connect/internal/cache"
	"github.com/thereayou/campus-connect/internal/handlers/dto"
	"github.com/thereayou/campus-connect/internal/middleware"
	"github.com/thereayou/campus-connect/internal/models"
	"github.com/thereayou/campus-connect/internal/services"
	"github.com/thereayou/campus-connect/internal/websocket"
	"github.com/thereayou/campus-connect/pkg/httperr"
)

const feedLimit = 50

type PostHandler struct {
	posts services.PostStore
	cache cache.Cache
	hub   services.Broadcaster
}

func NewPostHandler(posts services.PostStore, feedCache cache.Cache, hub services.Broadcaster) *PostHandler {
	return &PostHandler{posts: posts, cache: feedCache, hub: hub}
}

// GetFeed отдает ленту по схеме cache-aside: сначала кэш, при промахе,
// любой ошибке кэша или испорченной записи — база, результат кладется
// обратно с TTL. Кэшированный и свежий ответ байт в байт одинаковы.
func (h *PostHandler) GetFeed(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, cache.PostsKey)
		if err != nil {
			log.Printf("Redis GET posts cache error: %v", err)
		} else if cached != "" {
			if json.Valid([]byte(cached)) {
				c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
				return
			}
			log.Printf("Malformed posts cache entry, falling back to database")
		}
	}

	posts, err := h.posts.LatestPosts(feedLimit)
	if err != nil {
		c.Error(err)
		return
	}

	responses := make([]dto.PostResponse, len(posts))
	for i := range posts {
		responses[i] = formatPostResponse(&posts[i])
	}

	payload, err := json.Marshal(responses)
	if err != nil {
		c.Error(err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, cache.PostsKey, string(payload), cache.TTL); err != nil {
			log.Printf("Redis SET posts cache error: %v", err)
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// CreatePost сохраняет пост, после подтверждения записи рассылает
// post:created и сбрасывает кэш ленты
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest(err.Error()))
		return
	}

	post := &models.Post{
		AuthorID: userID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if err := h.posts.SavePost(post); err != nil {
		c.Error(err)
		return
	}

	full, err := h.posts.GetPost(post.ID.String())
	if err != nil {
		c.Error(err)
		return
	}

	response := formatPostResponse(full)

	h.broadcast(websocket.EventPostCreated, response)
	h.invalidateFeedCache(c)

	c.JSON(http.StatusCreated, response)
}

// ToggleLike переключает лайк текущего пользователя и рассылает
// post:liked с обновленным постом
func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(httperr.NotFound("Post not found"))
		return
	}

	post, liked, err := h.posts.TogglePostLike(postID, userID)
	if err != nil {
		c.Error(notFoundOr(err, "Post not found"))
		return
	}

	response := formatPostResponse(post)

	h.broadcast(websocket.EventPostLiked, response)
	h.invalidateFeedCache(c)

	c.JSON(http.StatusOK, gin.H{
		"post":  response,
		"liked": liked,
	})
}

// AddComment добавляет комментарий к посту
func (h *PostHandler) AddComment(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(httperr.NotFound("Post not found"))
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Comment content required"))
		return
	}

	post, err := h.posts.AddComment(postID, userID, req.Content)
	if err != nil {
		c.Error(notFoundOr(err, "Post not found"))
		return
	}

	h.invalidateFeedCache(c)

	c.JSON(http.StatusOK, formatPostResponse(post))
}

// GetPost возвращает один пост
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.posts.GetPost(c.Param("id"))
	if err != nil {
		c.Error(notFoundOr(err, "Post not found"))
		return
	}

	c.JSON(http.StatusOK, formatPostResponse(post))
}

// UpdatePost редактирует пост, менять может только автор
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	postID := c.Param("id")

	post, err := h.posts.GetPost(postID)
	if err != nil {
		c.Error(notFoundOr(err, "Post not found"))
		return
	}

	if post.AuthorID != userID {
		c.Error(httperr.Forbidden("Not allowed"))
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest(err.Error()))
		return
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}

	if err := h.posts.UpdatePost(post); err != nil {
		c.Error(err)
		return
	}

	h.invalidateFeedCache(c)

	c.JSON(http.StatusOK, formatPostResponse(post))
}

// DeletePost удаляет пост, удалять может только автор
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	postID := c.Param("id")

	post, err := h.posts.GetPost(postID)
	if err != nil {
		c.Error(notFoundOr(err, "Post not found"))
		return
	}

	if post.AuthorID != userID {
		c.Error(httperr.Forbidden("Not allowed"))
		return
	}

	if err := h.posts.DeletePost(postID); err != nil {
		c.Error(err)
		return
	}

	h.invalidateFeedCache(c)

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// broadcast — best-effort: отказ канала не влияет на ответ клиенту
func (h *PostHandler) broadcast(event websocket.EventName, data interface{}) {
	if h.hub == nil {
		return
	}
	if err := h.hub.Broadcast(event, data); err != nil {
		log.Printf("Failed to broadcast %s: %v", event, err)
	}
}

// invalidateFeedCache выбрасывает кэш ленты целиком. Частичная правка
// закэшированного результата запрещена: проще пересчитать, чем отдать
// набор, которого не вернул бы свежий запрос.
func (h *PostHandler) invalidateFeedCache(c *gin.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Del(c.Request.Context(), cache.PostsKey); err != nil {
		log.Printf("Failed to delete posts cache: %v", err)
	}
}
