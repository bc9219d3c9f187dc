// utils/flash.go
package utils

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
)

const flashCookie = "flash"

// Flash is a one-time banner shown on the page after a redirect.
type Flash struct {
	Level   string // "success" or "error"
	Message string
}

// FlashStore signs the flash cookie so the banner text can't be tampered
// with between the redirect and the next render.
type FlashStore struct {
	codec *securecookie.SecureCookie
}

func NewFlashStore(hashKey []byte) *FlashStore {
	return &FlashStore{codec: securecookie.New(hashKey, nil)}
}

// Set queues a flash for the next request.
func (f *FlashStore) Set(c *gin.Context, level, message string) {
	encoded, err := f.codec.Encode(flashCookie, Flash{Level: level, Message: message})
	if err != nil {
		log.Printf("flash: encode failed: %v", err)
		return
	}
	c.SetCookie(flashCookie, encoded, 300, "/", "", false, true)
}

// Pop returns the pending flash, if any, and clears it.
func (f *FlashStore) Pop(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	var fl Flash
	if err := f.codec.Decode(flashCookie, raw, &fl); err != nil {
		return nil
	}
	return &fl
}
