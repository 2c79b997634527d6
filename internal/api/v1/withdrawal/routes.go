package withdrawal

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	withdrawals := router.Group("/withdrawals")
	withdrawals.POST("", CreateWithdrawal)
	withdrawals.GET("", ListWithdrawals)
	withdrawals.POST("/:id/bank-details", AttachBankDetails)
	withdrawals.POST("/:id/cancel", CancelWithdrawal)
	withdrawals.POST("/:id/confirm-fee", ConfirmFeePayment)
}
