package post

import (
	"net/http"
	"nutritrack-go-worker/controllers/response"
	postService "nutritrack-go-worker/services/post"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	Service *postService.PostService
}

func (p *PostController) All(c *gin.Context) {
	response.OK(c, p.Service.All(c.Request.Context()))
}

func (p *PostController) Create(c *gin.Context) {
	posts, err := p.Service.Create(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusBadGateway, err.Error())
		return
	}
	response.OK(c, posts)
}

func (p *PostController) DeleteAll(c *gin.Context) {
	if err := p.Service.DeleteAll(); err != nil {
		response.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, nil)
}
