package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/niklaus0x/viral-blog/internal/config"
	"github.com/niklaus0x/viral-blog/internal/dto"
	"github.com/niklaus0x/viral-blog/internal/model"
	"github.com/niklaus0x/viral-blog/internal/service"
	"github.com/spf13/viper"
)

type Handler struct {
	services   *service.Service
	authConfig config.AuthConfig
}

func New(services *service.Service, authConfig config.AuthConfig) *Handler {
	return &Handler{
		services:   services,
		authConfig: authConfig,
	}
}

// InitRoutes mounts the API. Without an access secret only the public
// read surface exists: auth, write and upload routes are not
// registered at all and the service degrades to read-only.
func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewBasicResponse(false, "Method not allowed"))
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", viper.GetString("uploads.dir"))

	authenticated := h.authConfig.Enabled()

	api := r.Group("/api")
	if authenticated {
		api.POST("/upload-image", h.uploadImage)
	}

	v1 := api.Group("/v1")
	{
		if authenticated {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", h.authRegister)
				auth.POST("/login", h.authLogin)
			}
		}

		v1.GET("/categories", h.categoriesGet)

		posts := v1.Group("/posts")
		{
			posts.GET("", h.postsGetAll)
			posts.GET("/author/:userID", h.postsGetByAuthor)
			if authenticated {
				posts.POST("", h.authMiddleware, h.postsCreate)
			}

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				if authenticated {
					post.PATCH("", h.authMiddleware, h.postsEdit)
					post.DELETE("", h.authMiddleware, h.postsDelete)
				}
			}
		}

		comments := v1.Group("/comments")
		{
			if authenticated {
				comments.POST("", h.authMiddleware, h.commentsCreate)
			}

			postComments := comments.Group("/:postID")
			{
				postComments.GET("", h.commentsGet)

				if authenticated {
					comment := postComments.Group("/:commentID")
					{
						comment.PATCH("", h.authMiddleware, h.commentsEdit)
						comment.DELETE("", h.authMiddleware, h.commentsDelete)
					}
				}
			}
		}

		profiles := v1.Group("/profiles")
		{
			profiles.GET("/:userID", h.profilesGet)
			if authenticated {
				profiles.PATCH("/@me", h.authMiddleware, h.profilesUpdateMe)
			}
		}
	}

	return r
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.User {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.User)
	if !ok {
		return nil
	}

	return &user
}
