package withdrawal

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/withdrawals", ListWithdrawals)
	router.POST("/withdrawals/:id/reject", RejectWithdrawal)
}
