package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/pkg"
)

const (
	HeaderTechnicianID   = "X-Technician-Id"
	HeaderTechnicianName = "X-Technician-Name"
	HeaderUserRole       = "X-User-Role"
	HeaderUserSector     = "X-User-Sector"

	viewerKey = "viewer"
)

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)

// Identity reads the authenticated user from the headers set by the gateway
// in front of the service and stores it on the context.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole)))
		if role == "" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}
		c.Set(viewerKey, entities.Viewer{
			TechnicianID: strings.TrimSpace(c.GetHeader(HeaderTechnicianID)),
			DisplayName:  strings.TrimSpace(c.GetHeader(HeaderTechnicianName)),
			Role:         entities.Role(role),
			Sector:       entities.Sector(strings.TrimSpace(c.GetHeader(HeaderUserSector))),
		})
		c.Next()
	}
}

func viewerFrom(c *gin.Context) entities.Viewer {
	if v, ok := c.Get(viewerKey); ok {
		if viewer, ok := v.(entities.Viewer); ok {
			return viewer
		}
	}
	return entities.Viewer{}
}
