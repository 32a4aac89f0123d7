package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	projectuc "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/usecase/project"
	visituc "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/usecase/visit"
)

// respondError traduz os erros dos casos de uso para HTTP. Conflitos
// de agenda voltam como 409 com a entidade conflitante no corpo, para
// o cliente poder mostrar o aviso e repetir com confirm=true.
func respondError(c *gin.Context, err error) {
	var visitConflict *visituc.ConflictError
	if errors.As(err, &visitConflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":       "visit_conflict",
			"confirmable": true,
			"conflicting": visitConflict.Conflicting,
		})
		return
	}

	var projectConflict *projectuc.ConflictError
	if errors.As(err, &projectConflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":       "project_conflict",
			"confirmable": true,
			"conflicting": projectConflict.Conflicting,
		})
		return
	}

	switch code := httperr.BusinessCode(err); code {
	case "":
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})

	case "past_date_confirmation_required":
		c.JSON(http.StatusConflict, gin.H{
			"error":       code,
			"confirmable": true,
		})

	case "unknown_client", "unknown_visit", "unknown_project", "unknown_payment":
		c.JSON(http.StatusNotFound, gin.H{"error": code})

	case "summary_not_configured", "billing_not_configured":
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": code})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": code})
	}
}
