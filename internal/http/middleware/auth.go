package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tr4cking/internal/domain"
)

const credencialKey = "credencial"

// TokenParser valida un access token y devuelve la credencial.
type TokenParser interface {
	ParseAccess(token string) (domain.Credencial, error)
}

// Auth exige un bearer token válido y deja la credencial en el
// contexto de la request. Nada de estado ambiente: cada handler lee la
// credencial de su propia request.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token requerido"})
			return
		}
		cred, err := parser.ParseAccess(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token inválido o vencido"})
			return
		}
		c.Set(credencialKey, cred)
		c.Next()
	}
}

// RequireRoles corta con 403 si la credencial no tiene alguno de los
// roles pedidos. Debe montarse después de Auth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	permitidos := make(map[string]bool, len(roles))
	for _, r := range roles {
		permitidos[r] = true
	}
	return func(c *gin.Context) {
		cred, ok := GetCredencial(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token requerido"})
			return
		}
		if !permitidos[cred.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "rol sin permiso para esta operación"})
			return
		}
		c.Next()
	}
}

// GetCredencial recupera la credencial dejada por Auth.
func GetCredencial(c *gin.Context) (domain.Credencial, bool) {
	v, ok := c.Get(credencialKey)
	if !ok {
		return domain.Credencial{}, false
	}
	cred, ok := v.(domain.Credencial)
	return cred, ok
}
