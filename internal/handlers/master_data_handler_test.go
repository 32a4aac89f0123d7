package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

func TestApplyMasterDataUpdate(t *testing.T) {
	t.Run("absent fields keep current vocabularies", func(t *testing.T) {
		md := models.DefaultMasterData()
		before := md.VisitStatuses

		err := applyMasterDataUpdate(&md, UpdateMasterDataRequest{
			PhotoTypes: []string{"camera", "upload", "scanner"},
		})

		require.NoError(t, err)
		assert.Equal(t, before, md.VisitStatuses)
		assert.Len(t, md.PhotoTypes, 3)
	})

	t.Run("explicit empty list rejected", func(t *testing.T) {
		md := models.DefaultMasterData()

		err := applyMasterDataUpdate(&md, UpdateMasterDataRequest{
			VisitStatuses: []string{},
		})

		assert.True(t, httperr.IsBusiness(err, "empty_vocabulary"))
		assert.NotEmpty(t, md.VisitStatuses)
	})
}
