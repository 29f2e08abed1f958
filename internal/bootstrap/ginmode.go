package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
)

func SetGinMode(app config.AppConfig) {
	if app.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
}
