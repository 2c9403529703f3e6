package uuid

import (
	"github.com/google/uuid"
	"github.com/lukasz-zimnoch/dexly/custody"
)

type IDService struct{}

func (ids *IDService) NewID() custody.ID {
	return uuid.New()
}
