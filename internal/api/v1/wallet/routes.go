package wallet

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	wallet := router.Group("/wallet")
	wallet.GET("/balance", GetBalance)
	wallet.GET("/transactions", ListTransactions)
}
