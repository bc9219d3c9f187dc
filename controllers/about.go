// controllers/about.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) About(c *gin.Context) {
	lang := ctl.lang(c)
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Lang": string(lang),
		"T":    pageStrings(lang),
		"Biz":  bizView(lang),
	})
}
