package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yigit/wish2work/docs"
)

// SetupSwagger serves the generated API docs under /swagger. The documented
// host follows the configured port so "Try it out" hits this instance.
func SetupSwagger(router *gin.Engine, port string) {
	docs.SwaggerInfo.Host = "localhost:" + port
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true)))
}
