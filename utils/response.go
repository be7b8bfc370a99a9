package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// JSONErrorData attaches a payload to an error response, e.g. the current
// count and limit on a quota rejection.
func JSONErrorData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{"success": false, "message": message, "data": data})
}
