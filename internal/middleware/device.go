package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/notmyst33d/schedapi-ssr/internal/model"
)

// ContextKeyDevice is the Gin context key for the classified device.
const ContextKeyDevice = "device_class"

// ClassifyDevice derives the device class from the User-Agent once per
// request. The class only affects layout, never what data is fetched.
func ClassifyDevice() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyDevice, model.DeviceClassOf(c.GetHeader("User-Agent")))
		c.Next()
	}
}

// GetDeviceClass reads the classified device from the context, falling
// back to desktop when the middleware did not run.
func GetDeviceClass(c *gin.Context) model.DeviceClass {
	if v, ok := c.Get(ContextKeyDevice); ok {
		if d, ok := v.(model.DeviceClass); ok {
			return d
		}
	}
	return model.DeviceDesktop
}
