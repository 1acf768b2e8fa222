package router

import "github.com/gin-gonic/gin"

// Module is a self-contained route bundle (auth, photos) that mounts itself
// on a group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
