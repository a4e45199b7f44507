package user

import (
	"strings"

	"github.com/heartmarshall/vocamemo-backend/internal/validation"
)

// UpdateNicknameInput holds parameters for the nickname update operation.
// Nickname length is counted in characters, after trimming.
type UpdateNicknameInput struct {
	Nickname string `json:"nickname" validate:"required,min=2,max=8"`
}

// Normalize trims surrounding whitespace.
func (i *UpdateNicknameInput) Normalize() {
	i.Nickname = strings.TrimSpace(i.Nickname)
}

// Validate validates the update nickname input.
func (i UpdateNicknameInput) Validate() error {
	return validation.Struct(i)
}
