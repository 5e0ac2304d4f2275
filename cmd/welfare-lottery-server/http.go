package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// newRouter serves the streamable HTTP transport at mcpPath alongside
// /health and /tools.
func newRouter(server *mcp.Server, registry []toolInfo, mcpPath string) *gin.Engine {
	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/tools", func(c *gin.Context) {
		c.IndentedJSON(http.StatusOK, gin.H{"tools": registry})
	})
	r.Any(mcpPath, gin.WrapH(handler))
	return r
}
