package httpserver

import (
	"github.com/gin-gonic/gin"

	"physrisk-api/pkg/response"
)

const serviceName = "physrisk-api"

// healthCheck reports service health. The engine and object store are probed
// lazily per request, so there is nothing stateful to check here.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// readyCheck reports readiness to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

// liveCheck reports process liveness.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
