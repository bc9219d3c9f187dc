package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"redihair-backend/config"
	"redihair-backend/controllers"
)

func SetupRouter(ctl *controllers.Controller) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/", ctl.Home)
	r.POST("/book", ctl.Book)
	r.GET("/about", ctl.About)
	r.GET("/contact", ctl.ContactPage)
	r.POST("/contact", ctl.SubmitContact)
	r.POST("/i18n/setlang", ctl.SetLanguage)

	return r
}
