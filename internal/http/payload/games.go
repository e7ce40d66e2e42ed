package payload

import (
	"github.com/jellydator/validation"

	"playground/internal/core"
)

type CreateGameRequest struct {
	Name string `json:"name"`
	HTML string `json:"html"`
}

func (g CreateGameRequest) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&g.HTML, validation.Required),
	)
}

func (g CreateGameRequest) ToMessage() core.NewGameMessage {
	return core.NewGameMessage{
		Name: g.Name,
		HTML: g.HTML,
	}
}

// UpdateGameRequest fields are optional; absent fields leave the stored value
// unchanged. Present fields must carry a value, so an update cannot blank a
// game's name or markup.
type UpdateGameRequest struct {
	Name *string `json:"name"`
	HTML *string `json:"html"`
}

func (g UpdateGameRequest) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&g.HTML, validation.NilOrNotEmpty),
	)
}

func (g UpdateGameRequest) ToMessage() core.GameUpdateMessage {
	return core.GameUpdateMessage{
		Name: g.Name,
		HTML: g.HTML,
	}
}
