package roll

import "github.com/KirkDiggler/dicetray/internal/models"

type SaveRollSetInput struct {
	RollSet *models.RollSet
}

type GetLatestRollSetInput struct {
	SetID string
}

type DeleteRollSetsInput struct {
	SetIDs []string
}
